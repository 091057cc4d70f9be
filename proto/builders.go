package proto

// Request builders, kept next to the types in the same style as the message
// constructors elsewhere in this package.

func NewClientBatch(reqs []*TransactionReq) *TransactionClient {
	return &TransactionClient{Reqs: reqs}
}

func NewOpenReq(sessionID []byte, typ TransactionType, options *Options, networkLatencyMillis int32) *TransactionReq {
	return &TransactionReq{Open: &TransactionOpenReq{
		SessionID:            sessionID,
		Type:                 typ,
		Options:              options,
		NetworkLatencyMillis: networkLatencyMillis,
	}}
}

func NewCommitReq() *TransactionReq {
	return &TransactionReq{Commit: &TransactionCommitReq{}}
}

func NewRollbackReq() *TransactionReq {
	return &TransactionReq{Rollback: &TransactionRollbackReq{}}
}

func NewQueryReq(query string, options *Options, streamed bool) *TransactionReq {
	return &TransactionReq{Query: &QueryReq{Query: query, Options: options, Streamed: streamed}}
}

// NewStreamContinueReq builds the cooperative pagination follow-up: it reuses
// the original request's id so the server appends to the same result stream.
func NewStreamContinueReq(reqID []byte) *TransactionReq {
	return &TransactionReq{ReqID: reqID, StreamOp: &StreamReq{}}
}
