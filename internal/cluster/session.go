package cluster

import (
	"github.com/9triver/conceptdb/internal/connection"
)

// Session opens a session on the database's primary replica, or on any
// reachable replica when the options ask for read-any-replica.
func (c *Client) Session(database string, typ connection.SessionType, options *connection.Options) (*connection.Session, error) {
	open := func(address string) (*connection.Session, error) {
		core, err := c.CoreClient(address)
		if err != nil {
			return nil, err
		}
		return core.Session(database, typ, options)
	}
	if options.ReadAnyReplica() {
		return RunAnyReplica(c, database, open)
	}
	return RunPrimaryReplica(c, database, open)
}

// DatabaseSchema reads a database's schema from any reachable replica.
func (c *Client) DatabaseSchema(database string) (string, error) {
	return RunAnyReplica(c, database, func(address string) (string, error) {
		core, err := c.CoreClient(address)
		if err != nil {
			return "", err
		}
		db, err := core.Databases().Get(database)
		if err != nil {
			return "", err
		}
		return db.Schema()
	})
}

// DatabaseDelete deletes a database through its primary replica.
func (c *Client) DatabaseDelete(database string) error {
	_, err := RunPrimaryReplica(c, database, func(address string) (struct{}, error) {
		core, err := c.CoreClient(address)
		if err != nil {
			return struct{}{}, err
		}
		db, err := core.Databases().Get(database)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, db.Delete()
	})
	return err
}
