package cluster

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/9triver/conceptdb/errs"
	"github.com/9triver/conceptdb/internal/connection"
	"github.com/9triver/conceptdb/proto"
)

const (
	callTimeout = 30 * time.Second
	// primaryWait is how long to sit out a leadership transition before
	// refreshing replica metadata.
	primaryWait = 2 * time.Second
	// fetchRetries bounds the member-cycling loop when refreshing replica
	// metadata.
	fetchRetries = 10
	// primaryRetries bounds the refresh-and-retry loop against a primary.
	primaryRetries = 10
)

// Client fans a single-server driver out over a cluster: one core client and
// one cluster-service stub per member, plus a replica metadata cache per
// database.
type Client struct {
	credential *TokenCredential
	logger     *logrus.Entry

	primaryWait time.Duration

	mu        sync.Mutex
	addresses []string
	core      map[string]*connection.Client
	stubs     map[string]proto.ClusterClient
	replicas  map[string]*ReplicaSet

	dial func(address string) (*connection.Client, proto.ClusterClient, error)
	open atomic.Bool
}

// NewClient connects to the cluster reachable through the given seed
// addresses and discovers the remaining members. Credential may be nil for
// clusters without authentication.
func NewClient(addresses []string, credential *TokenCredential, opts ...connection.Option) (*Client, error) {
	if len(addresses) == 0 {
		return nil, errs.IllegalArgument.Withf("no addresses")
	}
	c := &Client{
		credential:  credential,
		logger:      logrus.WithField("cluster", addresses[0]),
		primaryWait: primaryWait,
		core:        make(map[string]*connection.Client),
		stubs:       make(map[string]proto.ClusterClient),
		replicas:    make(map[string]*ReplicaSet),
	}
	c.dial = func(address string) (*connection.Client, proto.ClusterClient, error) {
		dialOpts := opts
		if credential != nil {
			dialOpts = append(dialOpts, connection.WithPerRPCCredentials(credential))
		}
		core, err := connection.NewClient(address, dialOpts...)
		if err != nil {
			return nil, nil, err
		}
		stub := proto.NewClusterClient(core.Conn())
		if credential != nil {
			credential.bind(stub)
		}
		return core, stub, nil
	}
	c.open.Store(true)

	if err := c.discover(addresses); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// newClientWithStubs wires a client over injected member stubs. Tests only.
func newClientWithStubs(stubs map[string]proto.ClusterClient) *Client {
	c := &Client{
		logger:      logrus.WithField("cluster", "fake"),
		primaryWait: time.Millisecond,
		core:        make(map[string]*connection.Client),
		stubs:       stubs,
		replicas:    make(map[string]*ReplicaSet),
	}
	for addr := range stubs {
		c.addresses = append(c.addresses, addr)
	}
	c.open.Store(true)
	return c
}

// discover asks each seed for the full member list and opens a client per
// member. At least one seed must answer.
func (c *Client) discover(seeds []string) error {
	var lastErr error
	for _, seed := range seeds {
		stub, err := c.memberStub(seed)
		if err != nil {
			lastErr = err
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		res, err := stub.ServersAll(ctx, &proto.ServerManagerAllReq{})
		cancel()
		if err != nil {
			lastErr = errs.FromRPC(err)
			continue
		}
		for _, member := range res.Servers {
			if _, err := c.memberStub(member); err != nil {
				c.logger.WithError(err).WithField("member", member).Warn("member unreachable")
			}
		}
		return nil
	}
	return errs.ClusterUnableToConnect.Withf("seeds %v", seeds).With(lastErr)
}

// memberStub returns the cluster stub for an address, dialing it on first
// use.
func (c *Client) memberStub(address string) (proto.ClusterClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if stub, ok := c.stubs[address]; ok {
		return stub, nil
	}
	if c.dial == nil {
		return nil, errs.ClusterUnableToConnect.Withf("unknown member %q", address)
	}
	core, stub, err := c.dial(address)
	if err != nil {
		return nil, err
	}
	c.core[address] = core
	c.stubs[address] = stub
	c.addresses = append(c.addresses, address)
	return stub, nil
}

// CoreClient returns the single-server client for a member address.
func (c *Client) CoreClient(address string) (*connection.Client, error) {
	c.mu.Lock()
	core, ok := c.core[address]
	c.mu.Unlock()
	if ok {
		return core, nil
	}
	if _, err := c.memberStub(address); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.core[address], nil
}

func (c *Client) memberAddresses() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.addresses...)
}

// replicaSet returns the cached replica layout for a database, fetching it
// on first use.
func (c *Client) replicaSet(database string) (*ReplicaSet, error) {
	c.mu.Lock()
	rs, ok := c.replicas[database]
	c.mu.Unlock()
	if ok {
		return rs, nil
	}
	return c.fetchReplicas(database)
}

// fetchReplicas refreshes the replica layout of a database, cycling through
// cluster members until one answers.
func (c *Client) fetchReplicas(database string) (*ReplicaSet, error) {
	addresses := c.memberAddresses()
	var lastErr error
	attempts := 0
	for attempts < fetchRetries {
		for _, address := range addresses {
			if attempts >= fetchRetries {
				break
			}
			attempts++
			stub, err := c.memberStub(address)
			if err != nil {
				lastErr = err
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
			res, err := stub.DatabasesGet(ctx, &proto.ClusterDatabaseGetReq{Name: database})
			cancel()
			if err != nil {
				mapped := errs.FromRPC(err)
				if !errs.IsConnectivity(mapped) {
					return nil, mapped
				}
				lastErr = mapped
				continue
			}
			rs := newReplicaSet(database, res.Database.Replicas)
			c.mu.Lock()
			c.replicas[database] = rs
			c.mu.Unlock()
			return rs, nil
		}
	}
	return nil, errs.ClusterNotAvailable.Withf("database %q", database).With(lastErr)
}

func (c *Client) invalidateReplicas(database string) {
	c.mu.Lock()
	delete(c.replicas, database)
	c.mu.Unlock()
}

// Users returns the cluster's user manager.
func (c *Client) Users() *UserManager { return &UserManager{client: c} }

func (c *Client) IsOpen() bool { return c.open.Load() }

func (c *Client) Close() error {
	if !c.open.CompareAndSwap(true, false) {
		return nil
	}
	c.mu.Lock()
	cores := make([]*connection.Client, 0, len(c.core))
	for _, core := range c.core {
		cores = append(cores, core)
	}
	c.mu.Unlock()
	for _, core := range cores {
		if err := core.Close(); err != nil {
			c.logger.WithError(err).Warn("closing member client")
		}
	}
	return nil
}
