package stream

import (
	"github.com/google/uuid"

	"github.com/9triver/conceptdb/errs"
	"github.com/9triver/conceptdb/proto"
)

type iteratorState int

const (
	stateEmpty iteratorState = iota
	stateFetched
	stateDone
)

// continueDispatcher issues the pagination follow-up request. Satisfied by
// *Dispatcher.
type continueDispatcher interface {
	Dispatch(*proto.TransactionReq) error
}

// ResPartIterator presents a finite, server-paginated result as one lazy
// forward-only sequence, transparently issuing a continue request whenever
// the server signals that more data exists. It is not restartable;
// re-querying requires a new top-level request.
type ResPartIterator struct {
	requestID  uuid.UUID
	queue      *Queue[*proto.TransactionResPart]
	dispatcher continueDispatcher
	state      iteratorState
	current    *proto.TransactionResPart
	err        error
}

func newResPartIterator(requestID uuid.UUID, queue *Queue[*proto.TransactionResPart], dispatcher continueDispatcher) *ResPartIterator {
	return &ResPartIterator{requestID: requestID, queue: queue, dispatcher: dispatcher}
}

// Next advances to the next data-carrying part, blocking on the collector
// queue as needed. It returns false at the end of the stream or on error;
// check Err afterwards.
func (it *ResPartIterator) Next() bool {
	switch it.state {
	case stateDone:
		return false
	case stateFetched:
		it.state = stateEmpty
	}
	return it.fetch()
}

func (it *ResPartIterator) fetch() bool {
	for {
		part, err := it.queue.Take()
		if err != nil {
			it.fail(err)
			return false
		}
		switch {
		case part.HasState && part.State == proto.StreamState_DONE:
			it.state = stateDone
			return false
		case part.HasState && part.State == proto.StreamState_CONTINUE:
			// The server paused the stream; explicitly ask for the next page.
			if err := it.dispatcher.Dispatch(proto.NewStreamContinueReq(it.requestID[:])); err != nil {
				it.fail(err)
				return false
			}
		case part.Query == nil:
			it.fail(errs.MissingResponse.Withf("request id %s", it.requestID))
			return false
		default:
			it.current = part
			it.state = stateFetched
			return true
		}
	}
}

// Value returns the part buffered by the last successful Next, or nil if
// Next has not returned true.
func (it *ResPartIterator) Value() *proto.TransactionResPart {
	if it.state != stateFetched {
		return nil
	}
	return it.current
}

// Err returns the terminal error, if any, once Next has returned false.
func (it *ResPartIterator) Err() error { return it.err }

func (it *ResPartIterator) fail(err error) {
	it.err = err
	it.state = stateDone
}
