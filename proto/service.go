package proto

import (
	"context"

	"google.golang.org/grpc"
)

// Service method names, kept in one place so client stubs and test servers
// agree on them.
const (
	ServiceName        = "conceptdb.ConceptDB"
	ClusterServiceName = "conceptdb.Cluster"
)

// ConceptDBClient is the client stub for the core server service: unary
// database and session RPCs plus the duplex transaction stream.
type ConceptDBClient interface {
	DatabasesContains(ctx context.Context, in *DatabaseManagerContainsReq, opts ...grpc.CallOption) (*DatabaseManagerContainsRes, error)
	DatabasesCreate(ctx context.Context, in *DatabaseManagerCreateReq, opts ...grpc.CallOption) (*DatabaseManagerCreateRes, error)
	DatabasesAll(ctx context.Context, in *DatabaseManagerAllReq, opts ...grpc.CallOption) (*DatabaseManagerAllRes, error)
	DatabaseSchema(ctx context.Context, in *DatabaseSchemaReq, opts ...grpc.CallOption) (*DatabaseSchemaRes, error)
	DatabaseDelete(ctx context.Context, in *DatabaseDeleteReq, opts ...grpc.CallOption) (*DatabaseDeleteRes, error)
	SessionOpen(ctx context.Context, in *SessionOpenReq, opts ...grpc.CallOption) (*SessionOpenRes, error)
	SessionClose(ctx context.Context, in *SessionCloseReq, opts ...grpc.CallOption) (*SessionCloseRes, error)
	SessionPulse(ctx context.Context, in *SessionPulseReq, opts ...grpc.CallOption) (*SessionPulseRes, error)
	Transaction(ctx context.Context, opts ...grpc.CallOption) (ConceptDB_TransactionClient, error)
}

// ConceptDB_TransactionClient is the client side of the duplex transaction
// stream.
type ConceptDB_TransactionClient interface {
	Send(*TransactionClient) error
	Recv() (*TransactionServer, error)
	CloseSend() error
	grpc.ClientStream
}

type conceptDBClient struct {
	cc grpc.ClientConnInterface
}

func NewConceptDBClient(cc grpc.ClientConnInterface) ConceptDBClient {
	return &conceptDBClient{cc}
}

func (c *conceptDBClient) DatabasesContains(ctx context.Context, in *DatabaseManagerContainsReq, opts ...grpc.CallOption) (*DatabaseManagerContainsRes, error) {
	out := new(DatabaseManagerContainsRes)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/databases_contains", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conceptDBClient) DatabasesCreate(ctx context.Context, in *DatabaseManagerCreateReq, opts ...grpc.CallOption) (*DatabaseManagerCreateRes, error) {
	out := new(DatabaseManagerCreateRes)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/databases_create", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conceptDBClient) DatabasesAll(ctx context.Context, in *DatabaseManagerAllReq, opts ...grpc.CallOption) (*DatabaseManagerAllRes, error) {
	out := new(DatabaseManagerAllRes)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/databases_all", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conceptDBClient) DatabaseSchema(ctx context.Context, in *DatabaseSchemaReq, opts ...grpc.CallOption) (*DatabaseSchemaRes, error) {
	out := new(DatabaseSchemaRes)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/database_schema", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conceptDBClient) DatabaseDelete(ctx context.Context, in *DatabaseDeleteReq, opts ...grpc.CallOption) (*DatabaseDeleteRes, error) {
	out := new(DatabaseDeleteRes)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/database_delete", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conceptDBClient) SessionOpen(ctx context.Context, in *SessionOpenReq, opts ...grpc.CallOption) (*SessionOpenRes, error) {
	out := new(SessionOpenRes)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/session_open", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conceptDBClient) SessionClose(ctx context.Context, in *SessionCloseReq, opts ...grpc.CallOption) (*SessionCloseRes, error) {
	out := new(SessionCloseRes)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/session_close", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conceptDBClient) SessionPulse(ctx context.Context, in *SessionPulseReq, opts ...grpc.CallOption) (*SessionPulseRes, error) {
	out := new(SessionPulseRes)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/session_pulse", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

var transactionStreamDesc = &grpc.StreamDesc{
	StreamName:    "transaction",
	ServerStreams: true,
	ClientStreams: true,
}

func (c *conceptDBClient) Transaction(ctx context.Context, opts ...grpc.CallOption) (ConceptDB_TransactionClient, error) {
	stream, err := c.cc.NewStream(ctx, transactionStreamDesc, "/"+ServiceName+"/transaction", opts...)
	if err != nil {
		return nil, err
	}
	return &conceptDBTransactionClient{stream}, nil
}

type conceptDBTransactionClient struct {
	grpc.ClientStream
}

func (x *conceptDBTransactionClient) Send(m *TransactionClient) error {
	return x.ClientStream.SendMsg(m)
}

func (x *conceptDBTransactionClient) Recv() (*TransactionServer, error) {
	m := new(TransactionServer)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ClusterClient is the client stub for the cluster service: member discovery,
// replica metadata, user management and token credentials.
type ClusterClient interface {
	ServersAll(ctx context.Context, in *ServerManagerAllReq, opts ...grpc.CallOption) (*ServerManagerAllRes, error)
	DatabasesGet(ctx context.Context, in *ClusterDatabaseGetReq, opts ...grpc.CallOption) (*ClusterDatabaseGetRes, error)
	UsersAll(ctx context.Context, in *UserManagerAllReq, opts ...grpc.CallOption) (*UserManagerAllRes, error)
	UsersContains(ctx context.Context, in *UserManagerContainsReq, opts ...grpc.CallOption) (*UserManagerContainsRes, error)
	UsersCreate(ctx context.Context, in *UserManagerCreateReq, opts ...grpc.CallOption) (*UserManagerCreateRes, error)
	UsersDelete(ctx context.Context, in *UserManagerDeleteReq, opts ...grpc.CallOption) (*UserManagerDeleteRes, error)
	UserPasswordSet(ctx context.Context, in *UserPasswordSetReq, opts ...grpc.CallOption) (*UserPasswordSetRes, error)
	UserToken(ctx context.Context, in *UserTokenReq, opts ...grpc.CallOption) (*UserTokenRes, error)
}

type clusterClient struct {
	cc grpc.ClientConnInterface
}

func NewClusterClient(cc grpc.ClientConnInterface) ClusterClient {
	return &clusterClient{cc}
}

func (c *clusterClient) ServersAll(ctx context.Context, in *ServerManagerAllReq, opts ...grpc.CallOption) (*ServerManagerAllRes, error) {
	out := new(ServerManagerAllRes)
	if err := c.cc.Invoke(ctx, "/"+ClusterServiceName+"/servers_all", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clusterClient) DatabasesGet(ctx context.Context, in *ClusterDatabaseGetReq, opts ...grpc.CallOption) (*ClusterDatabaseGetRes, error) {
	out := new(ClusterDatabaseGetRes)
	if err := c.cc.Invoke(ctx, "/"+ClusterServiceName+"/databases_get", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clusterClient) UsersAll(ctx context.Context, in *UserManagerAllReq, opts ...grpc.CallOption) (*UserManagerAllRes, error) {
	out := new(UserManagerAllRes)
	if err := c.cc.Invoke(ctx, "/"+ClusterServiceName+"/users_all", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clusterClient) UsersContains(ctx context.Context, in *UserManagerContainsReq, opts ...grpc.CallOption) (*UserManagerContainsRes, error) {
	out := new(UserManagerContainsRes)
	if err := c.cc.Invoke(ctx, "/"+ClusterServiceName+"/users_contains", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clusterClient) UsersCreate(ctx context.Context, in *UserManagerCreateReq, opts ...grpc.CallOption) (*UserManagerCreateRes, error) {
	out := new(UserManagerCreateRes)
	if err := c.cc.Invoke(ctx, "/"+ClusterServiceName+"/users_create", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clusterClient) UsersDelete(ctx context.Context, in *UserManagerDeleteReq, opts ...grpc.CallOption) (*UserManagerDeleteRes, error) {
	out := new(UserManagerDeleteRes)
	if err := c.cc.Invoke(ctx, "/"+ClusterServiceName+"/users_delete", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clusterClient) UserPasswordSet(ctx context.Context, in *UserPasswordSetReq, opts ...grpc.CallOption) (*UserPasswordSetRes, error) {
	out := new(UserPasswordSetRes)
	if err := c.cc.Invoke(ctx, "/"+ClusterServiceName+"/user_password_set", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clusterClient) UserToken(ctx context.Context, in *UserTokenReq, opts ...grpc.CallOption) (*UserTokenRes, error) {
	out := new(UserTokenRes)
	if err := c.cc.Invoke(ctx, "/"+ClusterServiceName+"/user_token", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
