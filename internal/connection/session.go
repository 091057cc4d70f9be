package connection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/9triver/conceptdb/errs"
	"github.com/9triver/conceptdb/proto"
)

// Session is a server-side unit of work scoped to one database. It stays
// alive by pulsing the server every pulse interval and force-closes its
// transactions when it goes away.
type Session struct {
	client  *Client
	stub    proto.ConceptDBClient
	id      []byte
	db      string
	typ     SessionType
	options *Options
	logger  *logrus.Entry

	// networkLatency is the one-way cost estimate subtracted on the server
	// when applying transaction timeouts.
	networkLatency time.Duration

	pulseStop chan struct{}

	access       sync.RWMutex
	open         bool
	transactions map[*Transaction]struct{}
}

func openSession(c *Client, database string, typ SessionType, options *Options) (*Session, error) {
	if database == "" {
		return nil, errs.MissingDBName
	}
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	req := &proto.SessionOpenReq{
		Database: database,
		Type:     typ.proto(),
		Options:  options.Proto(),
	}
	start := time.Now()
	res, err := c.stub.SessionOpen(ctx, req)
	if err != nil {
		return nil, errs.FromRPC(err)
	}
	latency := time.Since(start) - time.Duration(res.ServerDurationMillis)*time.Millisecond
	if latency < time.Millisecond {
		latency = time.Millisecond
	}

	s := &Session{
		client:         c,
		stub:           c.stub,
		id:             res.SessionID,
		db:             database,
		typ:            typ,
		options:        options,
		logger:         c.logger.WithField("database", database),
		networkLatency: latency,
		pulseStop:      make(chan struct{}),
		open:           true,
		transactions:   make(map[*Transaction]struct{}),
	}
	go s.pulse(c.pulseInterval)
	return s, nil
}

func (s *Session) ID() []byte { return s.id }

func (s *Session) Database() string { return s.db }

func (s *Session) Type() SessionType { return s.typ }

// NetworkLatency is the round-trip cost measured while opening the session,
// floored at one millisecond.
func (s *Session) NetworkLatency() time.Duration { return s.networkLatency }

func (s *Session) IsOpen() bool {
	s.access.RLock()
	defer s.access.RUnlock()
	return s.open
}

// Transaction opens a transaction on this session. The per-transaction
// options fall back to the session's when nil.
func (s *Session) Transaction(typ TransactionType, options *Options) (*Transaction, error) {
	s.access.RLock()
	if !s.open {
		s.access.RUnlock()
		return nil, errs.SessionClosed
	}
	s.access.RUnlock()

	if options == nil {
		options = s.options
	}
	tx, err := openTransaction(s, typ, options)
	if err != nil {
		return nil, err
	}
	s.access.Lock()
	if !s.open {
		s.access.Unlock()
		tx.Close()
		return nil, errs.SessionClosed
	}
	s.transactions[tx] = struct{}{}
	s.access.Unlock()
	return tx, nil
}

func (s *Session) removeTransaction(tx *Transaction) {
	s.access.Lock()
	delete(s.transactions, tx)
	s.access.Unlock()
}

// pulse pings the server on a ticker. A failed or not-alive pulse means the
// server has dropped the session, so the local side is torn down without a
// close RPC.
func (s *Session) pulse(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.pulseStop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
			res, err := s.stub.SessionPulse(ctx, &proto.SessionPulseReq{SessionID: s.id})
			cancel()
			if err != nil || !res.Alive {
				if err != nil {
					s.logger.WithError(errs.FromRPC(err)).Debug("session pulse failed")
				}
				s.close(false)
				return
			}
		}
	}
}

// Close force-closes all transactions and tells the server the session is
// done. Idempotent.
func (s *Session) Close() error {
	return s.close(true)
}

func (s *Session) close(notifyServer bool) error {
	s.access.Lock()
	if !s.open {
		s.access.Unlock()
		return nil
	}
	s.open = false
	txs := make([]*Transaction, 0, len(s.transactions))
	for tx := range s.transactions {
		txs = append(txs, tx)
	}
	s.transactions = make(map[*Transaction]struct{})
	close(s.pulseStop)
	s.access.Unlock()

	for _, tx := range txs {
		tx.Close()
	}
	s.client.removeSession(s)

	if !notifyServer {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	if _, err := s.stub.SessionClose(ctx, &proto.SessionCloseReq{SessionID: s.id}); err != nil {
		mapped := errs.FromRPC(err)
		// A dead server has already discarded the session; nothing to report.
		if errs.IsConnectivity(mapped) {
			s.logger.WithError(mapped).Debug("session close not delivered")
			return nil
		}
		return mapped
	}
	return nil
}

func (s *Session) String() string {
	return fmt.Sprintf("Session(%s/%s)", s.db, s.typ)
}
