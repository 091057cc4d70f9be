package proto

// TransactionType mirrors the server's transaction type enum.
type TransactionType int32

const (
	TransactionType_READ  TransactionType = 0
	TransactionType_WRITE TransactionType = 1
)

// StreamState is the continuation signal carried by a streamed response part.
type StreamState int32

const (
	StreamState_CONTINUE StreamState = 0
	StreamState_DONE     StreamState = 1
)

// TransactionClient is the client-to-server message: a batch of one or more
// requests coalesced by the request transmitter into a single network write.
type TransactionClient struct {
	Reqs []*TransactionReq `protobuf:"bytes,1,rep,name=reqs,proto3" json:"reqs,omitempty"`
}

func (m *TransactionClient) Reset()         { *m = TransactionClient{} }
func (m *TransactionClient) String() string { return messageString(m) }
func (*TransactionClient) ProtoMessage()    {}

// TransactionReq carries one logical request. ReqID is a 16-byte random UUID
// correlating the request with its response(s). At most one of the payload
// fields is set.
type TransactionReq struct {
	ReqID    []byte                 `protobuf:"bytes,1,opt,name=req_id,json=reqId,proto3" json:"req_id,omitempty"`
	Metadata map[string]string      `protobuf:"bytes,2,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	Open     *TransactionOpenReq    `protobuf:"bytes,3,opt,name=open,proto3" json:"open,omitempty"`
	Commit   *TransactionCommitReq  `protobuf:"bytes,4,opt,name=commit,proto3" json:"commit,omitempty"`
	Rollback *TransactionRollbackReq `protobuf:"bytes,5,opt,name=rollback,proto3" json:"rollback,omitempty"`
	Query    *QueryReq              `protobuf:"bytes,6,opt,name=query,proto3" json:"query,omitempty"`
	StreamOp *StreamReq             `protobuf:"bytes,7,opt,name=stream_op,json=streamOp,proto3" json:"stream_op,omitempty"`
}

func (m *TransactionReq) Reset()         { *m = TransactionReq{} }
func (m *TransactionReq) String() string { return messageString(m) }
func (*TransactionReq) ProtoMessage()    {}

// TransactionOpenReq is the first request on every duplex stream.
// NetworkLatencyMillis lets the server compute absolute deadlines net of the
// client-server round trip.
type TransactionOpenReq struct {
	SessionID            []byte          `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Type                 TransactionType `protobuf:"varint,2,opt,name=type,proto3" json:"type,omitempty"`
	Options              *Options        `protobuf:"bytes,3,opt,name=options,proto3" json:"options,omitempty"`
	NetworkLatencyMillis int32           `protobuf:"varint,4,opt,name=network_latency_millis,json=networkLatencyMillis,proto3" json:"network_latency_millis,omitempty"`
}

func (m *TransactionOpenReq) Reset()         { *m = TransactionOpenReq{} }
func (m *TransactionOpenReq) String() string { return messageString(m) }
func (*TransactionOpenReq) ProtoMessage()    {}

type TransactionCommitReq struct{}

func (m *TransactionCommitReq) Reset()         { *m = TransactionCommitReq{} }
func (m *TransactionCommitReq) String() string { return messageString(m) }
func (*TransactionCommitReq) ProtoMessage()    {}

type TransactionRollbackReq struct{}

func (m *TransactionRollbackReq) Reset()         { *m = TransactionRollbackReq{} }
func (m *TransactionRollbackReq) String() string { return messageString(m) }
func (*TransactionRollbackReq) ProtoMessage()    {}

// QueryReq carries one query string. Streamed is set when the caller expects a
// paginated sequence of response parts rather than a single response.
type QueryReq struct {
	Query    string   `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	Options  *Options `protobuf:"bytes,2,opt,name=options,proto3" json:"options,omitempty"`
	Streamed bool     `protobuf:"varint,3,opt,name=streamed,proto3" json:"streamed,omitempty"`
}

func (m *QueryReq) Reset()         { *m = QueryReq{} }
func (m *QueryReq) String() string { return messageString(m) }
func (*QueryReq) ProtoMessage()    {}

// StreamReq asks the server to produce the next page for the request
// identified by the enclosing TransactionReq's ReqID.
type StreamReq struct{}

func (m *StreamReq) Reset()         { *m = StreamReq{} }
func (m *StreamReq) String() string { return messageString(m) }
func (*StreamReq) ProtoMessage()    {}

// TransactionServer is the server-to-client message. Exactly one of Res and
// ResPart is set.
type TransactionServer struct {
	Res     *TransactionRes     `protobuf:"bytes,1,opt,name=res,proto3" json:"res,omitempty"`
	ResPart *TransactionResPart `protobuf:"bytes,2,opt,name=res_part,json=resPart,proto3" json:"res_part,omitempty"`
}

func (m *TransactionServer) Reset()         { *m = TransactionServer{} }
func (m *TransactionServer) String() string { return messageString(m) }
func (*TransactionServer) ProtoMessage()    {}

// TransactionRes is a single-answer response.
type TransactionRes struct {
	ReqID    []byte                 `protobuf:"bytes,1,opt,name=req_id,json=reqId,proto3" json:"req_id,omitempty"`
	Open     *TransactionOpenRes    `protobuf:"bytes,2,opt,name=open,proto3" json:"open,omitempty"`
	Commit   *TransactionCommitRes  `protobuf:"bytes,3,opt,name=commit,proto3" json:"commit,omitempty"`
	Rollback *TransactionRollbackRes `protobuf:"bytes,4,opt,name=rollback,proto3" json:"rollback,omitempty"`
	Query    *QueryRes              `protobuf:"bytes,5,opt,name=query,proto3" json:"query,omitempty"`
}

func (m *TransactionRes) Reset()         { *m = TransactionRes{} }
func (m *TransactionRes) String() string { return messageString(m) }
func (*TransactionRes) ProtoMessage()    {}

type TransactionOpenRes struct{}

func (m *TransactionOpenRes) Reset()         { *m = TransactionOpenRes{} }
func (m *TransactionOpenRes) String() string { return messageString(m) }
func (*TransactionOpenRes) ProtoMessage()    {}

type TransactionCommitRes struct{}

func (m *TransactionCommitRes) Reset()         { *m = TransactionCommitRes{} }
func (m *TransactionCommitRes) String() string { return messageString(m) }
func (*TransactionCommitRes) ProtoMessage()    {}

type TransactionRollbackRes struct{}

func (m *TransactionRollbackRes) Reset()         { *m = TransactionRollbackRes{} }
func (m *TransactionRollbackRes) String() string { return messageString(m) }
func (*TransactionRollbackRes) ProtoMessage()    {}

type QueryRes struct {
	Answer *ConceptMap `protobuf:"bytes,1,opt,name=answer,proto3" json:"answer,omitempty"`
}

func (m *QueryRes) Reset()         { *m = QueryRes{} }
func (m *QueryRes) String() string { return messageString(m) }
func (*QueryRes) ProtoMessage()    {}

// TransactionResPart is one chunk of a streamed answer. When HasState is set
// the part is a control signal (CONTINUE or DONE) and carries no data.
type TransactionResPart struct {
	ReqID    []byte      `protobuf:"bytes,1,opt,name=req_id,json=reqId,proto3" json:"req_id,omitempty"`
	HasState bool        `protobuf:"varint,2,opt,name=has_state,json=hasState,proto3" json:"has_state,omitempty"`
	State    StreamState `protobuf:"varint,3,opt,name=state,proto3" json:"state,omitempty"`
	Query    *QueryResPart `protobuf:"bytes,4,opt,name=query,proto3" json:"query,omitempty"`
}

func (m *TransactionResPart) Reset()         { *m = TransactionResPart{} }
func (m *TransactionResPart) String() string { return messageString(m) }
func (*TransactionResPart) ProtoMessage()    {}

type QueryResPart struct {
	Answers []*ConceptMap `protobuf:"bytes,1,rep,name=answers,proto3" json:"answers,omitempty"`
}

func (m *QueryResPart) Reset()         { *m = QueryResPart{} }
func (m *QueryResPart) String() string { return messageString(m) }
func (*QueryResPart) ProtoMessage()    {}
