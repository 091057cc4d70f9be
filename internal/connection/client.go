package connection

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/9triver/conceptdb/errs"
	"github.com/9triver/conceptdb/internal/stream"
	"github.com/9triver/conceptdb/proto"
)

const (
	// callTimeout bounds every unary RPC issued by the driver.
	callTimeout = 30 * time.Second
	// pulseInterval is how often an open session pings the server to stay
	// alive.
	pulseInterval = 5 * time.Second
)

type settings struct {
	tlsConfig     *tls.Config
	parallelism   int
	pulseInterval time.Duration
	perRPC        credentials.PerRPCCredentials
}

type Option func(*settings) error

// WithTLS enables transport security with the given configuration.
func WithTLS(cfg *tls.Config) Option {
	return func(s *settings) error {
		s.tlsConfig = cfg
		return nil
	}
}

// WithRootCA enables transport security trusting only the CA certificate at
// the given path.
func WithRootCA(path string) Option {
	return func(s *settings) error {
		pem, err := os.ReadFile(path)
		if err != nil {
			return errs.UnableToConnect.With(err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return errs.UnableToConnect.Withf("no certificates found in %s", path)
		}
		s.tlsConfig = &tls.Config{RootCAs: pool}
		return nil
	}
}

// WithParallelism sets the number of request batching executors. Defaults to
// the number of CPUs.
func WithParallelism(n int) Option {
	return func(s *settings) error {
		if n < 1 {
			return errs.IllegalArgument.Withf("parallelism %d", n)
		}
		s.parallelism = n
		return nil
	}
}

// WithPerRPCCredentials attaches call credentials to every RPC. Used by the
// cluster client to send token credentials.
func WithPerRPCCredentials(c credentials.PerRPCCredentials) Option {
	return func(s *settings) error {
		s.perRPC = c
		return nil
	}
}

func withPulseInterval(d time.Duration) Option {
	return func(s *settings) error {
		s.pulseInterval = d
		return nil
	}
}

// Client owns a gRPC channel to one server, the request transmitter shared by
// every transaction opened through it, and the set of live sessions.
type Client struct {
	address     string
	conn        *grpc.ClientConn
	stub        proto.ConceptDBClient
	transmitter *stream.Transmitter
	databases   *DatabaseManager
	logger      *logrus.Entry

	pulseInterval time.Duration

	mu       sync.Mutex
	sessions map[*Session]struct{}
	open     atomic.Bool
}

// NewClient dials the server at address. The connection is established
// lazily; a wrong address surfaces on the first RPC.
func NewClient(address string, opts ...Option) (*Client, error) {
	s := settings{pulseInterval: pulseInterval}
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, err
		}
	}

	creds := insecure.NewCredentials()
	if s.tlsConfig != nil {
		creds = credentials.NewTLS(s.tlsConfig)
	}
	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if s.perRPC != nil {
		dialOpts = append(dialOpts, grpc.WithPerRPCCredentials(s.perRPC))
	}
	conn, err := grpc.NewClient(address, dialOpts...)
	if err != nil {
		return nil, errs.UnableToConnect.With(err)
	}

	c := &Client{
		address:       address,
		conn:          conn,
		stub:          proto.NewConceptDBClient(conn),
		transmitter:   stream.NewTransmitter(s.parallelism),
		logger:        logrus.WithField("server", address),
		pulseInterval: s.pulseInterval,
		sessions:      make(map[*Session]struct{}),
	}
	c.databases = &DatabaseManager{client: c}
	c.open.Store(true)
	return c, nil
}

// newClientWithStub builds a client over an injected stub, without a real
// channel. Used by tests and by the cluster layer's address probing.
func newClientWithStub(address string, stub proto.ConceptDBClient, opts ...Option) (*Client, error) {
	s := settings{pulseInterval: pulseInterval}
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, err
		}
	}
	c := &Client{
		address:       address,
		stub:          stub,
		transmitter:   stream.NewTransmitter(s.parallelism),
		logger:        logrus.WithField("server", address),
		pulseInterval: s.pulseInterval,
		sessions:      make(map[*Session]struct{}),
	}
	c.databases = &DatabaseManager{client: c}
	c.open.Store(true)
	return c, nil
}

func (c *Client) Address() string { return c.address }

// Conn exposes the underlying channel so sibling services (the cluster
// endpoints) can share it. Nil when the client was built over an injected
// stub.
func (c *Client) Conn() *grpc.ClientConn { return c.conn }

func (c *Client) IsOpen() bool { return c.open.Load() }

// Databases returns the database manager bound to this client.
func (c *Client) Databases() *DatabaseManager { return c.databases }

// Session opens a session on the named database.
func (c *Client) Session(database string, typ SessionType, options *Options) (*Session, error) {
	if !c.open.Load() {
		return nil, errs.ClientClosed
	}
	sess, err := openSession(c, database, typ, options)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.sessions[sess] = struct{}{}
	c.mu.Unlock()
	return sess, nil
}

func (c *Client) removeSession(s *Session) {
	c.mu.Lock()
	delete(c.sessions, s)
	c.mu.Unlock()
}

// Close shuts down every session, the transmitter and the channel. Safe to
// call more than once.
func (c *Client) Close() error {
	if !c.open.CompareAndSwap(true, false) {
		return nil
	}
	c.mu.Lock()
	sessions := make([]*Session, 0, len(c.sessions))
	for s := range c.sessions {
		sessions = append(sessions, s)
	}
	c.mu.Unlock()
	for _, s := range sessions {
		if err := s.Close(); err != nil {
			c.logger.WithError(err).Warn("closing session")
		}
	}
	c.transmitter.Close()
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) String() string {
	return fmt.Sprintf("Client(%s)", c.address)
}
