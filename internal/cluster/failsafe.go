package cluster

import (
	"errors"
	"time"

	"github.com/9triver/conceptdb/errs"
)

// RunPrimaryReplica runs op against the primary replica of a database. When
// the contacted member answers "not primary", or is unreachable, the replica
// metadata is refreshed after a short wait and the op retried, bounded by
// primaryRetries. Application errors propagate immediately.
func RunPrimaryReplica[T any](c *Client, database string, op func(address string) (T, error)) (T, error) {
	var zero T
	rs, err := c.replicaSet(database)
	if err != nil {
		return zero, err
	}
	var lastErr error
	for attempt := 0; attempt < primaryRetries; attempt++ {
		primary := rs.Primary()
		if primary == nil {
			if rs, err = c.refreshAfterWait(database); err != nil {
				return zero, err
			}
			lastErr = errs.ClusterNotAvailable.Withf("no primary for %q", database)
			continue
		}
		res, err := op(primary.Address)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, errs.ReplicaNotPrimary) && !errs.IsConnectivity(err) {
			return zero, err
		}
		c.logger.WithError(err).WithField("replica", primary.Address).Debug("retrying against new primary")
		lastErr = err
		if rs, err = c.refreshAfterWait(database); err != nil {
			return zero, err
		}
	}
	return zero, errs.ClusterNotAvailable.Withf("database %q", database).With(lastErr)
}

// RunAnyReplica runs op against the first reachable replica, preferred one
// first. Only connectivity failures advance to the next replica.
func RunAnyReplica[T any](c *Client, database string, op func(address string) (T, error)) (T, error) {
	var zero T
	rs, err := c.replicaSet(database)
	if err != nil {
		return zero, err
	}
	var lastErr error
	for _, replica := range rs.Ordered() {
		res, err := op(replica.Address)
		if err == nil {
			return res, nil
		}
		if !errs.IsConnectivity(err) {
			return zero, err
		}
		c.logger.WithError(err).WithField("replica", replica.Address).Debug("replica unreachable")
		lastErr = err
	}
	return zero, errs.ClusterUnableToConnect.Withf("database %q", database).With(lastErr)
}

// refreshAfterWait sits out a leadership transition, then drops and refetches
// the replica cache entry.
func (c *Client) refreshAfterWait(database string) (*ReplicaSet, error) {
	time.Sleep(c.primaryWait)
	c.invalidateReplicas(database)
	return c.fetchReplicas(database)
}
