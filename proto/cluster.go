package proto

// ServerManagerAllReq asks any reachable cluster member for the full member
// address list.
type ServerManagerAllReq struct{}

func (m *ServerManagerAllReq) Reset()         { *m = ServerManagerAllReq{} }
func (m *ServerManagerAllReq) String() string { return messageString(m) }
func (*ServerManagerAllReq) ProtoMessage()    {}

type ServerManagerAllRes struct {
	Servers []string `protobuf:"bytes,1,rep,name=servers,proto3" json:"servers,omitempty"`
}

func (m *ServerManagerAllRes) Reset()         { *m = ServerManagerAllRes{} }
func (m *ServerManagerAllRes) String() string { return messageString(m) }
func (*ServerManagerAllRes) ProtoMessage()    {}

type ClusterDatabaseGetReq struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *ClusterDatabaseGetReq) Reset()         { *m = ClusterDatabaseGetReq{} }
func (m *ClusterDatabaseGetReq) String() string { return messageString(m) }
func (*ClusterDatabaseGetReq) ProtoMessage()    {}

type ClusterDatabaseGetRes struct {
	Database *ClusterDatabase `protobuf:"bytes,1,opt,name=database,proto3" json:"database,omitempty"`
}

func (m *ClusterDatabaseGetRes) Reset()         { *m = ClusterDatabaseGetRes{} }
func (m *ClusterDatabaseGetRes) String() string { return messageString(m) }
func (*ClusterDatabaseGetRes) ProtoMessage()    {}

type ClusterDatabase struct {
	Name     string     `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Replicas []*Replica `protobuf:"bytes,2,rep,name=replicas,proto3" json:"replicas,omitempty"`
}

func (m *ClusterDatabase) Reset()         { *m = ClusterDatabase{} }
func (m *ClusterDatabase) String() string { return messageString(m) }
func (*ClusterDatabase) ProtoMessage()    {}

// Replica describes one replica of a database: where it lives, the raft term
// it reported, and whether it is the primary (writable) or the preferred
// (read-optimal) replica at that term.
type Replica struct {
	Address   string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Term      int64  `protobuf:"varint,2,opt,name=term,proto3" json:"term,omitempty"`
	Primary   bool   `protobuf:"varint,3,opt,name=primary,proto3" json:"primary,omitempty"`
	Preferred bool   `protobuf:"varint,4,opt,name=preferred,proto3" json:"preferred,omitempty"`
}

func (m *Replica) Reset()         { *m = Replica{} }
func (m *Replica) String() string { return messageString(m) }
func (*Replica) ProtoMessage()    {}

// User management (cluster deployments only).

type UserManagerAllReq struct{}

func (m *UserManagerAllReq) Reset()         { *m = UserManagerAllReq{} }
func (m *UserManagerAllReq) String() string { return messageString(m) }
func (*UserManagerAllReq) ProtoMessage()    {}

type UserManagerAllRes struct {
	Usernames []string `protobuf:"bytes,1,rep,name=usernames,proto3" json:"usernames,omitempty"`
}

func (m *UserManagerAllRes) Reset()         { *m = UserManagerAllRes{} }
func (m *UserManagerAllRes) String() string { return messageString(m) }
func (*UserManagerAllRes) ProtoMessage()    {}

type UserManagerContainsReq struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
}

func (m *UserManagerContainsReq) Reset()         { *m = UserManagerContainsReq{} }
func (m *UserManagerContainsReq) String() string { return messageString(m) }
func (*UserManagerContainsReq) ProtoMessage()    {}

type UserManagerContainsRes struct {
	Contains bool `protobuf:"varint,1,opt,name=contains,proto3" json:"contains,omitempty"`
}

func (m *UserManagerContainsRes) Reset()         { *m = UserManagerContainsRes{} }
func (m *UserManagerContainsRes) String() string { return messageString(m) }
func (*UserManagerContainsRes) ProtoMessage()    {}

type UserManagerCreateReq struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *UserManagerCreateReq) Reset()         { *m = UserManagerCreateReq{} }
func (m *UserManagerCreateReq) String() string { return messageString(m) }
func (*UserManagerCreateReq) ProtoMessage()    {}

type UserManagerCreateRes struct{}

func (m *UserManagerCreateRes) Reset()         { *m = UserManagerCreateRes{} }
func (m *UserManagerCreateRes) String() string { return messageString(m) }
func (*UserManagerCreateRes) ProtoMessage()    {}

type UserManagerDeleteReq struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
}

func (m *UserManagerDeleteReq) Reset()         { *m = UserManagerDeleteReq{} }
func (m *UserManagerDeleteReq) String() string { return messageString(m) }
func (*UserManagerDeleteReq) ProtoMessage()    {}

type UserManagerDeleteRes struct{}

func (m *UserManagerDeleteRes) Reset()         { *m = UserManagerDeleteRes{} }
func (m *UserManagerDeleteRes) String() string { return messageString(m) }
func (*UserManagerDeleteRes) ProtoMessage()    {}

type UserPasswordSetReq struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *UserPasswordSetReq) Reset()         { *m = UserPasswordSetReq{} }
func (m *UserPasswordSetReq) String() string { return messageString(m) }
func (*UserPasswordSetReq) ProtoMessage()    {}

type UserPasswordSetRes struct{}

func (m *UserPasswordSetRes) Reset()         { *m = UserPasswordSetRes{} }
func (m *UserPasswordSetRes) String() string { return messageString(m) }
func (*UserPasswordSetRes) ProtoMessage()    {}

// UserTokenReq exchanges a username and password for a renewable token
// credential.
type UserTokenReq struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *UserTokenReq) Reset()         { *m = UserTokenReq{} }
func (m *UserTokenReq) String() string { return messageString(m) }
func (*UserTokenReq) ProtoMessage()    {}

type UserTokenRes struct {
	Token string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
}

func (m *UserTokenRes) Reset()         { *m = UserTokenRes{} }
func (m *UserTokenRes) String() string { return messageString(m) }
func (*UserTokenRes) ProtoMessage()    {}
