package stream

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/9triver/conceptdb/errs"
	"github.com/9triver/conceptdb/proto"
)

// Batching windows. The first window is kept short so a lone request pays
// almost no added latency; subsequent windows are longer to coalesce bursts.
const (
	batchWindowSmallMillis = 1
	batchWindowLargeMillis = 3
)

// SendStream is the outbound half of a duplex transaction channel.
type SendStream interface {
	Send(*proto.TransactionClient) error
	CloseSend() error
}

// Transmitter turns many small rapid sends into fewer, larger network writes.
// It owns a fixed pool of executor goroutines; each open transaction's
// Dispatcher is assigned round-robin to one executor for its lifetime so one
// transaction under load cannot starve another's batching cycle.
type Transmitter struct {
	executors []*executor
	nextIndex atomic.Uint64
	access    sync.RWMutex
	open      atomic.Bool
}

// NewTransmitter starts parallelism executor goroutines. A non-positive
// parallelism defaults to the available CPU count.
func NewTransmitter(parallelism int) *Transmitter {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	t := &Transmitter{}
	t.open.Store(true)
	for i := 0; i < parallelism; i++ {
		t.executors = append(t.executors, newExecutor(t))
	}
	return t
}

func (t *Transmitter) nextExecutor() *executor {
	i := t.nextIndex.Add(1) - 1
	return t.executors[int(i%uint64(len(t.executors)))]
}

// Dispatcher registers a new dispatcher for one transaction's send stream.
func (t *Transmitter) Dispatcher(stream SendStream) (*Dispatcher, error) {
	t.access.RLock()
	defer t.access.RUnlock()
	if !t.open.Load() {
		return nil, errs.ClientClosed
	}
	e := t.nextExecutor()
	d := &Dispatcher{transmitter: t, executor: e, stream: stream}
	e.add(d)
	return d, nil
}

// Close stops every executor. Dispatches issued afterwards fail fast with the
// client-closed error.
func (t *Transmitter) Close() {
	t.access.Lock()
	defer t.access.Unlock()
	if t.open.CompareAndSwap(true, false) {
		for _, e := range t.executors {
			e.close()
		}
	}
}

// executor runs one batching goroutine. The permit channel gates the run loop
// so an idle executor consumes no CPU until a dispatch signals it.
type executor struct {
	transmitter *Transmitter
	mu          sync.Mutex
	dispatchers map[*Dispatcher]struct{}
	running     atomic.Bool
	permit      chan struct{}
	window      *batchWindow
}

func newExecutor(t *Transmitter) *executor {
	e := &executor{
		transmitter: t,
		dispatchers: make(map[*Dispatcher]struct{}),
		permit:      make(chan struct{}, 1),
		window:      defaultBatchWindow,
	}
	go e.run()
	return e
}

func (e *executor) add(d *Dispatcher) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dispatchers[d] = struct{}{}
}

func (e *executor) remove(d *Dispatcher) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.dispatchers, d)
}

func (e *executor) snapshot() []*Dispatcher {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Dispatcher, 0, len(e.dispatchers))
	for d := range e.dispatchers {
		out = append(out, d)
	}
	return out
}

func (e *executor) empty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.dispatchers) == 0
}

// mayStartRunning releases the permit exactly once per idle-to-running
// transition.
func (e *executor) mayStartRunning() {
	if e.running.CompareAndSwap(false, true) {
		e.permit <- struct{}{}
	}
}

func (e *executor) run() {
	for e.transmitter.open.Load() {
		<-e.permit
		first := true
		for {
			if first {
				e.window.sleepSmall()
			} else {
				e.window.sleepLarge()
			}
			dispatchers := e.snapshot()
			pending := false
			for _, d := range dispatchers {
				if d.sendBatchedRequests() {
					pending = true
				}
			}
			if !pending {
				break
			}
			first = false
		}
		e.running.Store(false)
		// A dispatch may have raced the loop exit; re-arm if work remains.
		if e.anyPending() {
			e.mayStartRunning()
		}
	}
}

func (e *executor) anyPending() bool {
	for _, d := range e.snapshot() {
		if d.hasPending() {
			return true
		}
	}
	return false
}

func (e *executor) close() {
	for _, d := range e.snapshot() {
		d.Close()
	}
	e.mayStartRunning()
}

// Dispatcher buffers requests for one transaction and flushes them as a
// single combined client message.
type Dispatcher struct {
	transmitter *Transmitter
	executor    *executor
	stream      SendStream

	queueMu sync.Mutex
	queue   []*proto.TransactionReq
	sendMu  sync.Mutex
}

// Dispatch enqueues request for the next batching cycle.
func (d *Dispatcher) Dispatch(request *proto.TransactionReq) error {
	d.transmitter.access.RLock()
	defer d.transmitter.access.RUnlock()
	if !d.transmitter.open.Load() {
		return errs.ClientClosed
	}
	d.enqueue(request)
	d.executor.mayStartRunning()
	return nil
}

// DispatchNow enqueues request and flushes synchronously, bypassing the
// batching window. Used for the transaction-open request, which must not wait
// on a timer.
func (d *Dispatcher) DispatchNow(request *proto.TransactionReq) error {
	d.transmitter.access.RLock()
	defer d.transmitter.access.RUnlock()
	if !d.transmitter.open.Load() {
		return errs.ClientClosed
	}
	d.enqueue(request)
	d.sendBatchedRequests()
	return nil
}

func (d *Dispatcher) enqueue(request *proto.TransactionReq) {
	d.queueMu.Lock()
	defer d.queueMu.Unlock()
	d.queue = append(d.queue, request)
}

func (d *Dispatcher) hasPending() bool {
	d.queueMu.Lock()
	defer d.queueMu.Unlock()
	return len(d.queue) > 0
}

// sendBatchedRequests drains the pending queue and ships it as one message.
// Returns whether anything was sent. The send mutex serializes writers on the
// underlying stream, which is not safe for concurrent sends.
func (d *Dispatcher) sendBatchedRequests() bool {
	d.sendMu.Lock()
	defer d.sendMu.Unlock()
	d.queueMu.Lock()
	reqs := d.queue
	d.queue = nil
	d.queueMu.Unlock()
	if len(reqs) == 0 || !d.transmitter.open.Load() {
		return false
	}
	if err := d.stream.Send(proto.NewClientBatch(reqs)); err != nil {
		// The receive side observes the stream failure and tears the
		// transaction down; nothing to re-raise here.
		logrus.WithError(err).Debug("failed to send batched requests")
	}
	return true
}

// Close half-closes the send side and removes the dispatcher from its
// executor. No further client messages will be sent.
func (d *Dispatcher) Close() {
	if err := d.stream.CloseSend(); err != nil {
		logrus.WithError(err).Debug("failed to half-close send stream")
	}
	d.executor.remove(d)
}
