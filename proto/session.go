package proto

// SessionType distinguishes data sessions from schema sessions.
type SessionType int32

const (
	SessionType_DATA   SessionType = 0
	SessionType_SCHEMA SessionType = 1
)

type SessionOpenReq struct {
	Database string      `protobuf:"bytes,1,opt,name=database,proto3" json:"database,omitempty"`
	Type     SessionType `protobuf:"varint,2,opt,name=type,proto3" json:"type,omitempty"`
	Options  *Options    `protobuf:"bytes,3,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *SessionOpenReq) Reset()         { *m = SessionOpenReq{} }
func (m *SessionOpenReq) String() string { return messageString(m) }
func (*SessionOpenReq) ProtoMessage()    {}

// SessionOpenRes returns the server-issued session id and how long the server
// itself spent opening the session, so the client can subtract it from the
// observed round trip when measuring network latency.
type SessionOpenRes struct {
	SessionID            []byte `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ServerDurationMillis int32  `protobuf:"varint,2,opt,name=server_duration_millis,json=serverDurationMillis,proto3" json:"server_duration_millis,omitempty"`
}

func (m *SessionOpenRes) Reset()         { *m = SessionOpenRes{} }
func (m *SessionOpenRes) String() string { return messageString(m) }
func (*SessionOpenRes) ProtoMessage()    {}

type SessionCloseReq struct {
	SessionID []byte `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
}

func (m *SessionCloseReq) Reset()         { *m = SessionCloseReq{} }
func (m *SessionCloseReq) String() string { return messageString(m) }
func (*SessionCloseReq) ProtoMessage()    {}

type SessionCloseRes struct{}

func (m *SessionCloseRes) Reset()         { *m = SessionCloseRes{} }
func (m *SessionCloseRes) String() string { return messageString(m) }
func (*SessionCloseRes) ProtoMessage()    {}

type SessionPulseReq struct {
	SessionID []byte `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
}

func (m *SessionPulseReq) Reset()         { *m = SessionPulseReq{} }
func (m *SessionPulseReq) String() string { return messageString(m) }
func (*SessionPulseReq) ProtoMessage()    {}

type SessionPulseRes struct {
	Alive bool `protobuf:"varint,1,opt,name=alive,proto3" json:"alive,omitempty"`
}

func (m *SessionPulseRes) Reset()         { *m = SessionPulseRes{} }
func (m *SessionPulseRes) String() string { return messageString(m) }
func (*SessionPulseRes) ProtoMessage()    {}
