package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/9triver/conceptdb/errs"
	"github.com/9triver/conceptdb/internal/stream"
	"github.com/9triver/conceptdb/proto"
)

// Transaction is one duplex stream to the server. Requests go out through
// the shared transmitter; responses are matched back by request id.
type Transaction struct {
	session *Session
	typ     TransactionType
	options *Options
	bidi    *stream.Bidirectional
}

func openTransaction(s *Session, typ TransactionType, options *Options) (*Transaction, error) {
	grpcStream, err := s.stub.Transaction(context.Background())
	if err != nil {
		return nil, errs.FromRPC(err)
	}
	bidi, err := stream.NewBidirectional(grpcStream, s.client.transmitter)
	if err != nil {
		return nil, err
	}
	tx := &Transaction{session: s, typ: typ, options: options, bidi: bidi}

	openReq := proto.NewOpenReq(
		s.id, typ.proto(), options.Proto(),
		int32(s.networkLatency/time.Millisecond),
	)
	single, err := bidi.Single(openReq, false)
	if err != nil {
		bidi.Close()
		return nil, err
	}
	if _, err := single.Get(); err != nil {
		bidi.Close()
		return nil, err
	}
	return tx, nil
}

func (t *Transaction) Type() TransactionType { return t.typ }

func (t *Transaction) IsOpen() bool { return t.bidi.IsOpen() }

// Query submits a request and returns a promise for its single response.
// The request rides the next batch window.
func (t *Transaction) Query(query string, options *Options) (*Promise, error) {
	if options == nil {
		options = t.options
	}
	return t.execute(proto.NewQueryReq(query, options.Proto(), false))
}

// Stream submits a request whose answer arrives in parts. The iterator pulls
// further pages on demand.
func (t *Transaction) Stream(query string, options *Options) (*stream.ResPartIterator, error) {
	if options == nil {
		options = t.options
	}
	return t.bidi.Stream(proto.NewQueryReq(query, options.Proto(), true))
}

// Commit flushes the commit immediately and waits for the result. The
// transaction is closed whether the commit succeeds or not.
func (t *Transaction) Commit() error {
	defer t.Close()
	single, err := t.bidi.Single(proto.NewCommitReq(), false)
	if err != nil {
		return err
	}
	_, err = single.Get()
	return err
}

// Rollback undoes uncommitted writes. The transaction stays open.
func (t *Transaction) Rollback() error {
	p, err := t.execute(proto.NewRollbackReq())
	if err != nil {
		return err
	}
	_, err = p.Get()
	return err
}

func (t *Transaction) execute(req *proto.TransactionReq) (*Promise, error) {
	single, err := t.bidi.Single(req, true)
	if err != nil {
		return nil, err
	}
	return &Promise{single: single}, nil
}

// Close tears down the stream and releases the transaction from its session.
// Idempotent.
func (t *Transaction) Close() error {
	t.bidi.Close()
	t.session.removeTransaction(t)
	return nil
}

func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction(%s/%s)", t.session.db, t.typ)
}

// Promise is a response that may not have arrived yet. Get blocks until it
// does or the stream dies.
type Promise struct {
	single *stream.Single
}

func (p *Promise) Get() (*proto.TransactionRes, error) {
	return p.single.Get()
}
