// Package cluster layers replica discovery, failover and user management over
// the single-server connection package.
package cluster

import (
	"fmt"

	"github.com/9triver/conceptdb/proto"
)

// ReplicaSet is the last known replica layout of one database: which member
// holds the primary copy at which raft term, and which member is preferred
// for reads.
type ReplicaSet struct {
	database string
	replicas []*proto.Replica
}

func newReplicaSet(database string, replicas []*proto.Replica) *ReplicaSet {
	return &ReplicaSet{database: database, replicas: replicas}
}

func (rs *ReplicaSet) Database() string { return rs.database }

// Primary returns the replica at the highest term that reports itself
// primary, or nil when no primary is known.
func (rs *ReplicaSet) Primary() *proto.Replica {
	var primary *proto.Replica
	for _, r := range rs.replicas {
		if !r.Primary {
			continue
		}
		if primary == nil || r.Term > primary.Term {
			primary = r
		}
	}
	return primary
}

// Preferred returns the read-preferred replica, falling back to the first
// known replica.
func (rs *ReplicaSet) Preferred() *proto.Replica {
	for _, r := range rs.replicas {
		if r.Preferred {
			return r
		}
	}
	if len(rs.replicas) > 0 {
		return rs.replicas[0]
	}
	return nil
}

// Ordered lists the replicas with the preferred one first, keeping the
// server-reported order for the rest.
func (rs *ReplicaSet) Ordered() []*proto.Replica {
	preferred := rs.Preferred()
	if preferred == nil {
		return nil
	}
	out := make([]*proto.Replica, 0, len(rs.replicas))
	out = append(out, preferred)
	for _, r := range rs.replicas {
		if r != preferred {
			out = append(out, r)
		}
	}
	return out
}

func (rs *ReplicaSet) String() string {
	return fmt.Sprintf("ReplicaSet(%s, %d replicas)", rs.database, len(rs.replicas))
}
