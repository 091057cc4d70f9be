package stream

import (
	"errors"
	"io"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/9triver/conceptdb/errs"
	"github.com/9triver/conceptdb/proto"
)

// TransactionStream is the duplex channel underneath one transaction,
// satisfied by the generated gRPC stream client.
type TransactionStream interface {
	Send(*proto.TransactionClient) error
	Recv() (*proto.TransactionServer, error)
	CloseSend() error
}

// Bidirectional multiplexes many single-response and streamed-response
// requests over one duplex channel, demultiplexing inbound messages by
// request id into the response collectors.
type Bidirectional struct {
	resCollector     *Collector[*proto.TransactionRes]
	resPartCollector *Collector[*proto.TransactionResPart]
	dispatcher       *Dispatcher
	open             atomic.Bool
}

// NewBidirectional registers a dispatcher for the stream's send side and
// starts the receive loop.
func NewBidirectional(stream TransactionStream, transmitter *Transmitter) (*Bidirectional, error) {
	b := &Bidirectional{
		resCollector:     NewCollector[*proto.TransactionRes](),
		resPartCollector: NewCollector[*proto.TransactionResPart](),
	}
	dispatcher, err := transmitter.Dispatcher(stream)
	if err != nil {
		return nil, err
	}
	b.dispatcher = dispatcher
	b.open.Store(true)
	go b.listen(stream)
	return b, nil
}

// Single sends a request expecting exactly one response. The returned handle
// blocks on Get until the response or the stream's terminal error arrives.
func (b *Bidirectional) Single(request *proto.TransactionReq, batch bool) (*Single, error) {
	if !b.open.Load() {
		return nil, errs.TransactionClosed
	}
	id := uuid.New()
	request.ReqID = id[:]
	queue := b.resCollector.Queue(id)
	var err error
	if batch {
		err = b.dispatcher.Dispatch(request)
	} else {
		err = b.dispatcher.DispatchNow(request)
	}
	if err != nil {
		return nil, err
	}
	return &Single{queue: queue}, nil
}

// Stream sends a request expecting a paginated sequence of response parts and
// returns the lazy iterator over them.
func (b *Bidirectional) Stream(request *proto.TransactionReq) (*ResPartIterator, error) {
	if !b.open.Load() {
		return nil, errs.TransactionClosed
	}
	id := uuid.New()
	request.ReqID = id[:]
	queue := b.resPartCollector.Queue(id)
	if err := b.dispatcher.Dispatch(request); err != nil {
		return nil, err
	}
	return newResPartIterator(id, queue, b.dispatcher), nil
}

func (b *Bidirectional) IsOpen() bool { return b.open.Load() }

func (b *Bidirectional) listen(stream TransactionStream) {
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			b.CloseWithError(nil)
			return
		}
		if err != nil {
			b.CloseWithError(errs.FromRPC(err))
			return
		}
		if !b.open.Load() {
			return
		}
		if err := b.collect(msg); err != nil {
			logrus.WithError(err).Error("transaction stream protocol violation")
			b.CloseWithError(err)
			return
		}
	}
}

func (b *Bidirectional) collect(msg *proto.TransactionServer) error {
	switch {
	case msg.Res != nil:
		id, err := uuid.FromBytes(msg.Res.ReqID)
		if err != nil {
			return errs.UnknownRequestID.With(err)
		}
		queue := b.resCollector.Get(id)
		if queue == nil {
			return errs.UnknownRequestID.Withf("%s", id)
		}
		queue.Put(msg.Res)
	case msg.ResPart != nil:
		id, err := uuid.FromBytes(msg.ResPart.ReqID)
		if err != nil {
			return errs.UnknownRequestID.With(err)
		}
		queue := b.resPartCollector.Get(id)
		if queue == nil {
			return errs.UnknownRequestID.Withf("%s", id)
		}
		queue.Put(msg.ResPart)
	default:
		return errs.UnexpectedServer
	}
	return nil
}

// Close tears the stream down cleanly. Idempotent.
func (b *Bidirectional) Close() {
	b.CloseWithError(nil)
}

// CloseWithError closes both collectors, unblocking every pending caller with
// the same terminal error, then closes the dispatcher. The compare-and-swap
// guard keeps concurrent closers from double-tearing-down.
func (b *Bidirectional) CloseWithError(err error) {
	if b.open.CompareAndSwap(true, false) {
		b.resCollector.Close(err)
		b.resPartCollector.Close(err)
		b.dispatcher.Close()
	}
}

// Single is the handle for one pending single-response request.
type Single struct {
	queue *Queue[*proto.TransactionRes]
}

// Get blocks for the response and resolves it at most once meaningfully; a
// closed stream re-raises the terminal error recorded at close time.
func (s *Single) Get() (*proto.TransactionRes, error) {
	return s.queue.Take()
}
