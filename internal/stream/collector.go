// Package stream implements the transaction protocol core: a keyed response
// collector, a batching request transmitter, the per-transaction duplex
// stream, and the pull-based response-part iterator.
package stream

import (
	"sync"

	"github.com/google/uuid"

	"github.com/9triver/conceptdb/errs"
)

// Collector is a keyed mailbox: one FIFO queue per in-flight request id.
// A queue must be registered before the request it belongs to is transmitted,
// otherwise the response could arrive before anyone is listening for it.
type Collector[T any] struct {
	mu     sync.Mutex
	queues map[uuid.UUID]*Queue[T]
}

func NewCollector[T any]() *Collector[T] {
	return &Collector[T]{queues: make(map[uuid.UUID]*Queue[T])}
}

// Queue registers a new empty mailbox under id. Registering the same id twice
// is a programming error: request ids are generated fresh per request.
func (c *Collector[T]) Queue(id uuid.UUID) *Queue[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.queues[id]; ok {
		panic(errs.IllegalState.Withf("duplicate response queue for request id %s", id))
	}
	q := newQueue[T]()
	c.queues[id] = q
	return q
}

// Get returns the mailbox for id, or nil if none is registered. A nil result
// on an inbound message means the server sent an unknown request id.
func (c *Collector[T]) Get(id uuid.UUID) *Queue[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queues[id]
}

// Close marks every outstanding queue closed, broadcasting the same terminal
// signal to all blocked takers so that no caller hangs after the owning
// stream dies.
func (c *Collector[T]) Close(err error) {
	c.mu.Lock()
	queues := c.queues
	c.queues = make(map[uuid.UUID]*Queue[T])
	c.mu.Unlock()
	for _, q := range queues {
		q.close(err)
	}
}

// Queue is an unbounded FIFO with a blocking Take and a terminal closed state
// carrying an optional error.
type Queue[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	closed bool
	err    error
}

func newQueue[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Put appends message and wakes a blocked taker. Messages arriving after the
// queue closed are dropped: the stream is already tearing down and every
// taker has been released.
func (q *Queue[T]) Put(message T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.items = append(q.items, message)
	q.cond.Signal()
}

// Take blocks until a message or the closing signal arrives. A close with an
// error re-raises that error; a clean close raises the transaction-closed
// error.
func (q *Queue[T]) Take() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) > 0 {
		item := q.items[0]
		q.items = q.items[1:]
		return item, nil
	}
	var zero T
	if q.err != nil {
		return zero, q.err
	}
	return zero, errs.TransactionClosed
}

func (q *Queue[T]) close(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.err = err
	q.cond.Broadcast()
}
