package stream

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/9triver/conceptdb/errs"
)

func TestQueueTakeReturnsInPutOrder(t *testing.T) {
	c := NewCollector[int]()
	q := c.Queue(uuid.New())

	for i := 1; i <= 5; i++ {
		q.Put(i)
	}
	for i := 1; i <= 5; i++ {
		got, err := q.Take()
		if err != nil {
			t.Fatalf("Take returned error: %v", err)
		}
		if got != i {
			t.Fatalf("expected %d, got %d", i, got)
		}
	}
}

func TestQueueTakeBlocksUntilPut(t *testing.T) {
	c := NewCollector[string]()
	q := c.Queue(uuid.New())

	done := make(chan string, 1)
	go func() {
		v, err := q.Take()
		if err != nil {
			done <- "error: " + err.Error()
			return
		}
		done <- v
	}()

	select {
	case v := <-done:
		t.Fatalf("Take returned %q before Put", v)
	case <-time.After(20 * time.Millisecond):
	}

	q.Put("late")
	select {
	case v := <-done:
		if v != "late" {
			t.Fatalf("expected %q, got %q", "late", v)
		}
	case <-time.After(time.Second):
		t.Fatal("Take did not unblock after Put")
	}
}

func TestDuplicateQueueRegistrationPanics(t *testing.T) {
	c := NewCollector[int]()
	id := uuid.New()
	c.Queue(id)

	defer func() {
		if recover() == nil {
			t.Fatal("registering the same request id twice should panic")
		}
	}()
	c.Queue(id)
}

func TestUnknownIDReturnsNil(t *testing.T) {
	c := NewCollector[int]()
	if q := c.Get(uuid.New()); q != nil {
		t.Fatal("expected nil queue for unregistered request id")
	}
}

func TestCloseBroadcastsToAllWaiters(t *testing.T) {
	const waiters = 8
	c := NewCollector[int]()
	terminal := errors.New("connection reset")

	var wg sync.WaitGroup
	results := make(chan error, waiters)
	for i := 0; i < waiters; i++ {
		q := c.Queue(uuid.New())
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := q.Take()
			results <- err
		}()
	}

	// Give every goroutine a chance to block in Take.
	time.Sleep(20 * time.Millisecond)
	c.Close(terminal)

	doneCh := make(chan struct{})
	go func() {
		wg.Wait()
		close(doneCh)
	}()
	select {
	case <-doneCh:
	case <-time.After(time.Second):
		t.Fatal("not all waiters unblocked after Close")
	}

	for i := 0; i < waiters; i++ {
		err := <-results
		if !errors.Is(err, terminal) {
			t.Fatalf("waiter %d observed %v, expected broadcast error", i, err)
		}
	}
}

func TestTakeAfterCleanCloseReturnsClosedError(t *testing.T) {
	c := NewCollector[int]()
	q := c.Queue(uuid.New())
	c.Close(nil)

	_, err := q.Take()
	if !errors.Is(err, errs.TransactionClosed) {
		t.Fatalf("expected transaction-closed error, got %v", err)
	}
}

func TestBufferedMessagesDrainBeforeCloseSignal(t *testing.T) {
	c := NewCollector[int]()
	q := c.Queue(uuid.New())
	q.Put(1)
	q.Put(2)
	c.Close(nil)

	for i := 1; i <= 2; i++ {
		got, err := q.Take()
		if err != nil {
			t.Fatalf("Take returned error before draining buffer: %v", err)
		}
		if got != i {
			t.Fatalf("expected %d, got %d", i, got)
		}
	}
	if _, err := q.Take(); !errors.Is(err, errs.TransactionClosed) {
		t.Fatalf("expected closed error after drain, got %v", err)
	}
}
