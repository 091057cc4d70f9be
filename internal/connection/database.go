package connection

import (
	"context"

	"github.com/9triver/conceptdb/errs"
	"github.com/9triver/conceptdb/proto"
)

// DatabaseManager exposes the unary database RPCs of one server.
type DatabaseManager struct {
	client *Client
}

func (m *DatabaseManager) Contains(name string) (bool, error) {
	if name == "" {
		return false, errs.MissingDBName
	}
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	res, err := m.client.stub.DatabasesContains(ctx, &proto.DatabaseManagerContainsReq{Name: name})
	if err != nil {
		return false, errs.FromRPC(err)
	}
	return res.Contains, nil
}

func (m *DatabaseManager) Create(name string) error {
	if name == "" {
		return errs.MissingDBName
	}
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	if _, err := m.client.stub.DatabasesCreate(ctx, &proto.DatabaseManagerCreateReq{Name: name}); err != nil {
		return errs.FromRPC(err)
	}
	return nil
}

// All lists every database on the server.
func (m *DatabaseManager) All() ([]*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	res, err := m.client.stub.DatabasesAll(ctx, &proto.DatabaseManagerAllReq{})
	if err != nil {
		return nil, errs.FromRPC(err)
	}
	dbs := make([]*Database, 0, len(res.Names))
	for _, name := range res.Names {
		dbs = append(dbs, &Database{name: name, client: m.client})
	}
	return dbs, nil
}

// Get returns a handle for the named database, verifying it exists.
func (m *DatabaseManager) Get(name string) (*Database, error) {
	ok, err := m.Contains(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.DatabaseDoesNotExist.Withf("%q", name)
	}
	return &Database{name: name, client: m.client}, nil
}

// Database is a handle on one named database.
type Database struct {
	name   string
	client *Client
}

func (d *Database) Name() string { return d.name }

// Schema returns the database's schema as a text definition.
func (d *Database) Schema() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	res, err := d.client.stub.DatabaseSchema(ctx, &proto.DatabaseSchemaReq{Name: d.name})
	if err != nil {
		return "", errs.FromRPC(err)
	}
	return res.Schema, nil
}

func (d *Database) Delete() error {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	if _, err := d.client.stub.DatabaseDelete(ctx, &proto.DatabaseDeleteReq{Name: d.name}); err != nil {
		return errs.FromRPC(err)
	}
	return nil
}

func (d *Database) String() string { return d.name }
