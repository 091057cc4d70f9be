package proto

type DatabaseManagerContainsReq struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *DatabaseManagerContainsReq) Reset()         { *m = DatabaseManagerContainsReq{} }
func (m *DatabaseManagerContainsReq) String() string { return messageString(m) }
func (*DatabaseManagerContainsReq) ProtoMessage()    {}

type DatabaseManagerContainsRes struct {
	Contains bool `protobuf:"varint,1,opt,name=contains,proto3" json:"contains,omitempty"`
}

func (m *DatabaseManagerContainsRes) Reset()         { *m = DatabaseManagerContainsRes{} }
func (m *DatabaseManagerContainsRes) String() string { return messageString(m) }
func (*DatabaseManagerContainsRes) ProtoMessage()    {}

type DatabaseManagerCreateReq struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *DatabaseManagerCreateReq) Reset()         { *m = DatabaseManagerCreateReq{} }
func (m *DatabaseManagerCreateReq) String() string { return messageString(m) }
func (*DatabaseManagerCreateReq) ProtoMessage()    {}

type DatabaseManagerCreateRes struct{}

func (m *DatabaseManagerCreateRes) Reset()         { *m = DatabaseManagerCreateRes{} }
func (m *DatabaseManagerCreateRes) String() string { return messageString(m) }
func (*DatabaseManagerCreateRes) ProtoMessage()    {}

type DatabaseManagerAllReq struct{}

func (m *DatabaseManagerAllReq) Reset()         { *m = DatabaseManagerAllReq{} }
func (m *DatabaseManagerAllReq) String() string { return messageString(m) }
func (*DatabaseManagerAllReq) ProtoMessage()    {}

type DatabaseManagerAllRes struct {
	Names []string `protobuf:"bytes,1,rep,name=names,proto3" json:"names,omitempty"`
}

func (m *DatabaseManagerAllRes) Reset()         { *m = DatabaseManagerAllRes{} }
func (m *DatabaseManagerAllRes) String() string { return messageString(m) }
func (*DatabaseManagerAllRes) ProtoMessage()    {}

type DatabaseSchemaReq struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *DatabaseSchemaReq) Reset()         { *m = DatabaseSchemaReq{} }
func (m *DatabaseSchemaReq) String() string { return messageString(m) }
func (*DatabaseSchemaReq) ProtoMessage()    {}

type DatabaseSchemaRes struct {
	Schema string `protobuf:"bytes,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

func (m *DatabaseSchemaRes) Reset()         { *m = DatabaseSchemaRes{} }
func (m *DatabaseSchemaRes) String() string { return messageString(m) }
func (*DatabaseSchemaRes) ProtoMessage()    {}

type DatabaseDeleteReq struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *DatabaseDeleteReq) Reset()         { *m = DatabaseDeleteReq{} }
func (m *DatabaseDeleteReq) String() string { return messageString(m) }
func (*DatabaseDeleteReq) ProtoMessage()    {}

type DatabaseDeleteRes struct{}

func (m *DatabaseDeleteRes) Reset()         { *m = DatabaseDeleteRes{} }
func (m *DatabaseDeleteRes) String() string { return messageString(m) }
func (*DatabaseDeleteRes) ProtoMessage()    {}
