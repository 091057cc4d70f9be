package connection

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"

	"github.com/9triver/conceptdb/proto"
)

// fakeStub scripts the unary RPCs and hands out fakeTxStreams that answer
// transaction requests in-process.
type fakeStub struct {
	mu sync.Mutex

	openDelay      time.Duration
	serverDuration int32
	openErr        error

	pulseAlive bool
	pulseErr   error
	pulses     int
	closes     int

	txErr     error
	commitErr error
	txStreams []*fakeTxStream

	containsRes bool
	names       []string
	schema      string
	created     []string
	deleted     []string
	unaryErr    error
}

func newFakeStub() *fakeStub {
	return &fakeStub{pulseAlive: true}
}

func (f *fakeStub) SessionOpen(ctx context.Context, in *proto.SessionOpenReq, opts ...grpc.CallOption) (*proto.SessionOpenRes, error) {
	f.mu.Lock()
	delay, dur, err := f.openDelay, f.serverDuration, f.openErr
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	return &proto.SessionOpenRes{SessionID: []byte("session-1"), ServerDurationMillis: dur}, nil
}

func (f *fakeStub) SessionClose(ctx context.Context, in *proto.SessionCloseReq, opts ...grpc.CallOption) (*proto.SessionCloseRes, error) {
	f.mu.Lock()
	f.closes++
	f.mu.Unlock()
	return &proto.SessionCloseRes{}, nil
}

func (f *fakeStub) SessionPulse(ctx context.Context, in *proto.SessionPulseReq, opts ...grpc.CallOption) (*proto.SessionPulseRes, error) {
	f.mu.Lock()
	f.pulses++
	alive, err := f.pulseAlive, f.pulseErr
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return &proto.SessionPulseRes{Alive: alive}, nil
}

func (f *fakeStub) Transaction(ctx context.Context, opts ...grpc.CallOption) (proto.ConceptDB_TransactionClient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.txErr != nil {
		return nil, f.txErr
	}
	s := &fakeTxStream{
		stub:    f,
		inbound: make(chan *proto.TransactionServer, 64),
		errCh:   make(chan error, 1),
	}
	f.txStreams = append(f.txStreams, s)
	return s, nil
}

func (f *fakeStub) DatabasesContains(ctx context.Context, in *proto.DatabaseManagerContainsReq, opts ...grpc.CallOption) (*proto.DatabaseManagerContainsRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unaryErr != nil {
		return nil, f.unaryErr
	}
	return &proto.DatabaseManagerContainsRes{Contains: f.containsRes}, nil
}

func (f *fakeStub) DatabasesCreate(ctx context.Context, in *proto.DatabaseManagerCreateReq, opts ...grpc.CallOption) (*proto.DatabaseManagerCreateRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unaryErr != nil {
		return nil, f.unaryErr
	}
	f.created = append(f.created, in.Name)
	return &proto.DatabaseManagerCreateRes{}, nil
}

func (f *fakeStub) DatabasesAll(ctx context.Context, in *proto.DatabaseManagerAllReq, opts ...grpc.CallOption) (*proto.DatabaseManagerAllRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unaryErr != nil {
		return nil, f.unaryErr
	}
	return &proto.DatabaseManagerAllRes{Names: f.names}, nil
}

func (f *fakeStub) DatabaseSchema(ctx context.Context, in *proto.DatabaseSchemaReq, opts ...grpc.CallOption) (*proto.DatabaseSchemaRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &proto.DatabaseSchemaRes{Schema: f.schema}, nil
}

func (f *fakeStub) DatabaseDelete(ctx context.Context, in *proto.DatabaseDeleteReq, opts ...grpc.CallOption) (*proto.DatabaseDeleteRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, in.Name)
	return &proto.DatabaseDeleteRes{}, nil
}

// fakeTxStream answers every request in a batch straight away, the way a
// single-node server with no contention would.
type fakeTxStream struct {
	grpc.ClientStream
	stub *fakeStub

	inbound chan *proto.TransactionServer
	errCh   chan error
	errOnce sync.Once
}

func (f *fakeTxStream) Send(batch *proto.TransactionClient) error {
	for _, req := range batch.Reqs {
		switch {
		case req.Open != nil:
			f.inbound <- &proto.TransactionServer{Res: &proto.TransactionRes{
				ReqID: req.ReqID, Open: &proto.TransactionOpenRes{},
			}}
		case req.Commit != nil:
			f.stub.mu.Lock()
			commitErr := f.stub.commitErr
			f.stub.mu.Unlock()
			if commitErr != nil {
				f.failWith(commitErr)
				continue
			}
			f.inbound <- &proto.TransactionServer{Res: &proto.TransactionRes{
				ReqID: req.ReqID, Commit: &proto.TransactionCommitRes{},
			}}
		case req.Rollback != nil:
			f.inbound <- &proto.TransactionServer{Res: &proto.TransactionRes{
				ReqID: req.ReqID, Rollback: &proto.TransactionRollbackRes{},
			}}
		case req.Query != nil:
			f.inbound <- &proto.TransactionServer{Res: &proto.TransactionRes{
				ReqID: req.ReqID, Query: &proto.QueryRes{Answer: &proto.ConceptMap{}},
			}}
		}
	}
	return nil
}

func (f *fakeTxStream) Recv() (*proto.TransactionServer, error) {
	select {
	case err := <-f.errCh:
		return nil, err
	case msg, ok := <-f.inbound:
		if !ok {
			return nil, io.EOF
		}
		return msg, nil
	}
}

func (f *fakeTxStream) CloseSend() error { return nil }

func (f *fakeTxStream) failWith(err error) {
	f.errOnce.Do(func() { f.errCh <- err })
}

func newTestClient(t *testing.T, stub *fakeStub) *Client {
	t.Helper()
	c, err := newClientWithStub("localhost:1729", stub,
		WithParallelism(1), withPulseInterval(10*time.Millisecond))
	if err != nil {
		t.Fatalf("newClientWithStub: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}
