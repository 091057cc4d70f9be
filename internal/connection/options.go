// Package connection implements the user-facing driver objects: client,
// session, transaction and the database manager, layered over the protocol
// core in internal/stream.
package connection

import (
	"time"

	"github.com/9triver/conceptdb/proto"
)

type SessionType int

const (
	Data SessionType = iota
	Schema
)

func (t SessionType) proto() proto.SessionType {
	if t == Schema {
		return proto.SessionType_SCHEMA
	}
	return proto.SessionType_DATA
}

func (t SessionType) String() string {
	if t == Schema {
		return "schema"
	}
	return "data"
}

type TransactionType int

const (
	Read TransactionType = iota
	Write
)

func (t TransactionType) proto() proto.TransactionType {
	if t == Write {
		return proto.TransactionType_WRITE
	}
	return proto.TransactionType_READ
}

func (t TransactionType) String() string {
	if t == Write {
		return "write"
	}
	return "read"
}

// Options carries per-session and per-transaction tuning. Unset fields are
// omitted from the wire message so the server applies its own defaults.
type Options struct {
	infer              *bool
	explain            *bool
	parallel           *bool
	readAnyReplica     *bool
	prefetchSize       *int32
	sessionIdleTimeout *time.Duration
	transactionTimeout *time.Duration
	schemaLockTimeout  *time.Duration
}

func NewOptions() *Options { return &Options{} }

func (o *Options) SetInfer(v bool) *Options          { o.infer = &v; return o }
func (o *Options) SetExplain(v bool) *Options        { o.explain = &v; return o }
func (o *Options) SetParallel(v bool) *Options       { o.parallel = &v; return o }
func (o *Options) SetReadAnyReplica(v bool) *Options { o.readAnyReplica = &v; return o }
func (o *Options) SetPrefetchSize(v int32) *Options  { o.prefetchSize = &v; return o }

func (o *Options) SetSessionIdleTimeout(v time.Duration) *Options {
	o.sessionIdleTimeout = &v
	return o
}

func (o *Options) SetTransactionTimeout(v time.Duration) *Options {
	o.transactionTimeout = &v
	return o
}

func (o *Options) SetSchemaLockTimeout(v time.Duration) *Options {
	o.schemaLockTimeout = &v
	return o
}

func (o *Options) ReadAnyReplica() bool {
	return o != nil && o.readAnyReplica != nil && *o.readAnyReplica
}

// Proto converts the options to their wire form. Safe on a nil receiver.
func (o *Options) Proto() *proto.Options {
	out := &proto.Options{}
	if o == nil {
		return out
	}
	if o.infer != nil {
		out.HasInfer, out.Infer = true, *o.infer
	}
	if o.explain != nil {
		out.HasExplain, out.Explain = true, *o.explain
	}
	if o.parallel != nil {
		out.HasParallel, out.Parallel = true, *o.parallel
	}
	if o.readAnyReplica != nil {
		out.HasReadAnyReplica, out.ReadAnyReplica = true, *o.readAnyReplica
	}
	if o.prefetchSize != nil {
		out.HasPrefetchSize, out.PrefetchSize = true, *o.prefetchSize
	}
	if o.sessionIdleTimeout != nil {
		out.HasSessionIdleTimeout = true
		out.SessionIdleTimeoutMillis = int32(o.sessionIdleTimeout.Milliseconds())
	}
	if o.transactionTimeout != nil {
		out.HasTransactionTimeout = true
		out.TransactionTimeoutMillis = int32(o.transactionTimeout.Milliseconds())
	}
	if o.schemaLockTimeout != nil {
		out.HasSchemaLockTimeout = true
		out.SchemaLockTimeoutMillis = int32(o.schemaLockTimeout.Milliseconds())
	}
	return out
}
