package proto

import (
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/protoadapt"
)

// messageString renders any protocol message through the protobuf text
// format, matching what generated code would print.
func messageString(m protoadapt.MessageV1) string {
	return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m))
}

// Options carries the per-session and per-transaction tuning knobs understood
// by the server. All fields are optional; Has* flags distinguish "unset" from
// a zero value.
type Options struct {
	HasInfer                 bool  `protobuf:"varint,1,opt,name=has_infer,json=hasInfer,proto3" json:"has_infer,omitempty"`
	Infer                    bool  `protobuf:"varint,2,opt,name=infer,proto3" json:"infer,omitempty"`
	HasExplain               bool  `protobuf:"varint,3,opt,name=has_explain,json=hasExplain,proto3" json:"has_explain,omitempty"`
	Explain                  bool  `protobuf:"varint,4,opt,name=explain,proto3" json:"explain,omitempty"`
	HasParallel              bool  `protobuf:"varint,5,opt,name=has_parallel,json=hasParallel,proto3" json:"has_parallel,omitempty"`
	Parallel                 bool  `protobuf:"varint,6,opt,name=parallel,proto3" json:"parallel,omitempty"`
	HasPrefetchSize          bool  `protobuf:"varint,7,opt,name=has_prefetch_size,json=hasPrefetchSize,proto3" json:"has_prefetch_size,omitempty"`
	PrefetchSize             int32 `protobuf:"varint,8,opt,name=prefetch_size,json=prefetchSize,proto3" json:"prefetch_size,omitempty"`
	HasSessionIdleTimeout    bool  `protobuf:"varint,9,opt,name=has_session_idle_timeout,json=hasSessionIdleTimeout,proto3" json:"has_session_idle_timeout,omitempty"`
	SessionIdleTimeoutMillis int32 `protobuf:"varint,10,opt,name=session_idle_timeout_millis,json=sessionIdleTimeoutMillis,proto3" json:"session_idle_timeout_millis,omitempty"`
	HasTransactionTimeout    bool  `protobuf:"varint,11,opt,name=has_transaction_timeout,json=hasTransactionTimeout,proto3" json:"has_transaction_timeout,omitempty"`
	TransactionTimeoutMillis int32 `protobuf:"varint,12,opt,name=transaction_timeout_millis,json=transactionTimeoutMillis,proto3" json:"transaction_timeout_millis,omitempty"`
	HasSchemaLockTimeout     bool  `protobuf:"varint,13,opt,name=has_schema_lock_timeout,json=hasSchemaLockTimeout,proto3" json:"has_schema_lock_timeout,omitempty"`
	SchemaLockTimeoutMillis  int32 `protobuf:"varint,14,opt,name=schema_lock_timeout_millis,json=schemaLockTimeoutMillis,proto3" json:"schema_lock_timeout_millis,omitempty"`
	HasReadAnyReplica        bool  `protobuf:"varint,15,opt,name=has_read_any_replica,json=hasReadAnyReplica,proto3" json:"has_read_any_replica,omitempty"`
	ReadAnyReplica           bool  `protobuf:"varint,16,opt,name=read_any_replica,json=readAnyReplica,proto3" json:"read_any_replica,omitempty"`
}

func (m *Options) Reset()         { *m = Options{} }
func (m *Options) String() string { return messageString(m) }
func (*Options) ProtoMessage()    {}

// ConceptKind is the closed variant set of the concept model.
type ConceptKind int32

const (
	ConceptKind_ENTITY_TYPE    ConceptKind = 0
	ConceptKind_RELATION_TYPE  ConceptKind = 1
	ConceptKind_ATTRIBUTE_TYPE ConceptKind = 2
	ConceptKind_ROLE_TYPE      ConceptKind = 3
	ConceptKind_ENTITY         ConceptKind = 4
	ConceptKind_RELATION       ConceptKind = 5
	ConceptKind_ATTRIBUTE      ConceptKind = 6
)

// Concept is the wire form of one concept: a kind tag plus the fields that
// apply to it. Field applicability is by kind; the server never sets fields
// outside the variant.
type Concept struct {
	Kind      ConceptKind `protobuf:"varint,1,opt,name=kind,proto3" json:"kind,omitempty"`
	IID       []byte      `protobuf:"bytes,2,opt,name=iid,proto3" json:"iid,omitempty"`
	Label     string      `protobuf:"bytes,3,opt,name=label,proto3" json:"label,omitempty"`
	Abstract  bool        `protobuf:"varint,4,opt,name=abstract,proto3" json:"abstract,omitempty"`
	ValueType string      `protobuf:"bytes,5,opt,name=value_type,json=valueType,proto3" json:"value_type,omitempty"`
	Value     []byte      `protobuf:"bytes,6,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Concept) Reset()         { *m = Concept{} }
func (m *Concept) String() string { return messageString(m) }
func (*Concept) ProtoMessage()    {}

// ConceptMap is one answer row: named variables bound to concepts.
type ConceptMap struct {
	Map map[string]*Concept `protobuf:"bytes,1,rep,name=map,proto3" json:"map,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *ConceptMap) Reset()         { *m = ConceptMap{} }
func (m *ConceptMap) String() string { return messageString(m) }
func (*ConceptMap) ProtoMessage()    {}
