package stream

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/9triver/conceptdb/errs"
	"github.com/9triver/conceptdb/proto"
)

// fakeTransactionStream is an in-process duplex channel: sends are recorded,
// receives are scripted through a channel.
type fakeTransactionStream struct {
	mu       sync.Mutex
	batches  []*proto.TransactionClient
	inbound  chan *proto.TransactionServer
	recvErr  error
	errOnce  sync.Once
	errCh    chan struct{}
	sendDone bool
}

func newFakeTransactionStream() *fakeTransactionStream {
	return &fakeTransactionStream{
		inbound: make(chan *proto.TransactionServer, 16),
		errCh:   make(chan struct{}),
	}
}

func (f *fakeTransactionStream) Send(m *proto.TransactionClient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, m)
	return nil
}

func (f *fakeTransactionStream) CloseSend() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sendDone = true
	return nil
}

func (f *fakeTransactionStream) Recv() (*proto.TransactionServer, error) {
	select {
	case m, ok := <-f.inbound:
		if !ok {
			return nil, io.EOF
		}
		return m, nil
	case <-f.errCh:
		return nil, f.recvErr
	}
}

func (f *fakeTransactionStream) failWith(err error) {
	f.errOnce.Do(func() {
		f.recvErr = err
		close(f.errCh)
	})
}

// lastSentReqID digs the request id out of the most recent batch.
func (f *fakeTransactionStream) lastSentReqID(t *testing.T) []byte {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.batches) == 0 {
		t.Fatal("nothing sent yet")
	}
	last := f.batches[len(f.batches)-1]
	if len(last.Reqs) == 0 {
		t.Fatal("empty batch")
	}
	return last.Reqs[len(last.Reqs)-1].ReqID
}

func TestSingleResponseRoundTrip(t *testing.T) {
	tr := NewTransmitter(1)
	defer tr.Close()
	fake := newFakeTransactionStream()
	b, err := NewBidirectional(fake, tr)
	if err != nil {
		t.Fatalf("NewBidirectional: %v", err)
	}
	defer b.Close()

	single, err := b.Single(proto.NewCommitReq(), false)
	if err != nil {
		t.Fatalf("Single: %v", err)
	}
	reqID := fake.lastSentReqID(t)
	fake.inbound <- &proto.TransactionServer{
		Res: &proto.TransactionRes{ReqID: reqID, Commit: &proto.TransactionCommitRes{}},
	}

	res, err := single.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if res.Commit == nil {
		t.Fatal("expected commit response payload")
	}
}

func TestTransportErrorUnblocksAllPendingCallers(t *testing.T) {
	tr := NewTransmitter(1)
	defer tr.Close()
	fake := newFakeTransactionStream()
	b, err := NewBidirectional(fake, tr)
	if err != nil {
		t.Fatalf("NewBidirectional: %v", err)
	}

	first, err := b.Single(proto.NewCommitReq(), false)
	if err != nil {
		t.Fatalf("Single: %v", err)
	}
	second, err := b.Single(proto.NewRollbackReq(), false)
	if err != nil {
		t.Fatalf("Single: %v", err)
	}

	fake.failWith(status.Error(codes.Unavailable, "connection reset by peer"))

	for i, s := range []*Single{first, second} {
		_, err := s.Get()
		if !errors.Is(err, errs.UnableToConnect) {
			t.Fatalf("caller %d observed %v, expected unable-to-connect", i, err)
		}
	}
	if b.IsOpen() {
		t.Fatal("stream should be closed after transport error")
	}
}

func TestServerHalfCloseClosesStreamCleanly(t *testing.T) {
	tr := NewTransmitter(1)
	defer tr.Close()
	fake := newFakeTransactionStream()
	b, err := NewBidirectional(fake, tr)
	if err != nil {
		t.Fatalf("NewBidirectional: %v", err)
	}

	pending, err := b.Single(proto.NewCommitReq(), false)
	if err != nil {
		t.Fatalf("Single: %v", err)
	}
	close(fake.inbound)

	if _, err := pending.Get(); !errors.Is(err, errs.TransactionClosed) {
		t.Fatalf("expected transaction-closed after server half-close, got %v", err)
	}
	waitFor(t, time.Second, func() bool { return !b.IsOpen() })
}

func TestUnknownRequestIDTearsStreamDown(t *testing.T) {
	tr := NewTransmitter(1)
	defer tr.Close()
	fake := newFakeTransactionStream()
	b, err := NewBidirectional(fake, tr)
	if err != nil {
		t.Fatalf("NewBidirectional: %v", err)
	}

	pending, err := b.Single(proto.NewCommitReq(), false)
	if err != nil {
		t.Fatalf("Single: %v", err)
	}

	bogus := uuid.New()
	fake.inbound <- &proto.TransactionServer{
		Res: &proto.TransactionRes{ReqID: bogus[:]},
	}

	if _, err := pending.Get(); !errors.Is(err, errs.UnknownRequestID) {
		t.Fatalf("expected unknown-request-id, got %v", err)
	}
	waitFor(t, time.Second, func() bool { return !b.IsOpen() })
}

func TestOperationsOnClosedStreamFailFast(t *testing.T) {
	tr := NewTransmitter(1)
	defer tr.Close()
	fake := newFakeTransactionStream()
	b, err := NewBidirectional(fake, tr)
	if err != nil {
		t.Fatalf("NewBidirectional: %v", err)
	}
	b.Close()
	b.Close() // idempotent

	if _, err := b.Single(proto.NewCommitReq(), true); !errors.Is(err, errs.TransactionClosed) {
		t.Fatalf("Single on closed stream returned %v", err)
	}
	if _, err := b.Stream(proto.NewQueryReq("match $x;", nil, true)); !errors.Is(err, errs.TransactionClosed) {
		t.Fatalf("Stream on closed stream returned %v", err)
	}
}
