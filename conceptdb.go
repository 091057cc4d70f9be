// Package conceptdb is a client driver for ConceptDB servers and clusters.
//
// A Client multiplexes every transaction over batched duplex streams; a
// ClusterClient adds replica discovery, primary failover and token
// credentials on top.
package conceptdb

import (
	"github.com/9triver/conceptdb/internal/cluster"
	"github.com/9triver/conceptdb/internal/connection"
	"github.com/9triver/conceptdb/internal/stream"
)

// DefaultAddress is where a local server listens.
const DefaultAddress = "localhost:1729"

type (
	Client      = connection.Client
	Session     = connection.Session
	Transaction = connection.Transaction
	Promise     = connection.Promise
	Options     = connection.Options
	Database    = connection.Database
	Option      = connection.Option

	SessionType     = connection.SessionType
	TransactionType = connection.TransactionType

	ClusterClient   = cluster.Client
	TokenCredential = cluster.TokenCredential
	UserManager     = cluster.UserManager

	// ResPartIterator walks the pages of a streamed query answer.
	ResPartIterator = stream.ResPartIterator
)

const (
	Data   = connection.Data
	Schema = connection.Schema
	Read   = connection.Read
	Write  = connection.Write
)

var (
	WithTLS            = connection.WithTLS
	WithRootCA         = connection.WithRootCA
	WithParallelism    = connection.WithParallelism
	NewOptions         = connection.NewOptions
	NewTokenCredential = cluster.NewTokenCredential
)

// New connects to a single server.
func New(address string, opts ...Option) (*Client, error) {
	return connection.NewClient(address, opts...)
}

// NewCluster connects to a cluster through the given seed addresses.
// credential may be nil for clusters without authentication.
func NewCluster(addresses []string, credential *TokenCredential, opts ...Option) (*ClusterClient, error) {
	return cluster.NewClient(addresses, credential, opts...)
}
