package cluster

import (
	"context"
	"errors"
	"sync"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/9triver/conceptdb/errs"
	"github.com/9triver/conceptdb/proto"
)

// fakeClusterStub scripts one member's cluster service. DatabasesGet walks
// through layouts so a refresh can observe a leadership change.
type fakeClusterStub struct {
	mu sync.Mutex

	servers []string

	layouts  [][]*proto.Replica
	getCalls int
	getErr   error

	usernames []string
	usersErr  error
	tokens    []string
	tokenErr  error
	tokenReqs int
}

func (f *fakeClusterStub) ServersAll(ctx context.Context, in *proto.ServerManagerAllReq, opts ...grpc.CallOption) (*proto.ServerManagerAllRes, error) {
	return &proto.ServerManagerAllRes{Servers: f.servers}, nil
}

func (f *fakeClusterStub) DatabasesGet(ctx context.Context, in *proto.ClusterDatabaseGetReq, opts ...grpc.CallOption) (*proto.ClusterDatabaseGetRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	i := f.getCalls
	if i >= len(f.layouts) {
		i = len(f.layouts) - 1
	}
	f.getCalls++
	return &proto.ClusterDatabaseGetRes{Database: &proto.ClusterDatabase{
		Name: in.Name, Replicas: f.layouts[i],
	}}, nil
}

func (f *fakeClusterStub) UsersAll(ctx context.Context, in *proto.UserManagerAllReq, opts ...grpc.CallOption) (*proto.UserManagerAllRes, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return &proto.UserManagerAllRes{Usernames: f.usernames}, nil
}

func (f *fakeClusterStub) UsersContains(ctx context.Context, in *proto.UserManagerContainsReq, opts ...grpc.CallOption) (*proto.UserManagerContainsRes, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return &proto.UserManagerContainsRes{Contains: true}, nil
}

func (f *fakeClusterStub) UsersCreate(ctx context.Context, in *proto.UserManagerCreateReq, opts ...grpc.CallOption) (*proto.UserManagerCreateRes, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return &proto.UserManagerCreateRes{}, nil
}

func (f *fakeClusterStub) UsersDelete(ctx context.Context, in *proto.UserManagerDeleteReq, opts ...grpc.CallOption) (*proto.UserManagerDeleteRes, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return &proto.UserManagerDeleteRes{}, nil
}

func (f *fakeClusterStub) UserPasswordSet(ctx context.Context, in *proto.UserPasswordSetReq, opts ...grpc.CallOption) (*proto.UserPasswordSetRes, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return &proto.UserPasswordSetRes{}, nil
}

func (f *fakeClusterStub) UserToken(ctx context.Context, in *proto.UserTokenReq, opts ...grpc.CallOption) (*proto.UserTokenRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tokenErr != nil {
		return nil, f.tokenErr
	}
	i := f.tokenReqs
	if i >= len(f.tokens) {
		i = len(f.tokens) - 1
	}
	f.tokenReqs++
	return &proto.UserTokenRes{Token: f.tokens[i]}, nil
}

func replica(address string, term int64, primary, preferred bool) *proto.Replica {
	return &proto.Replica{Address: address, Term: term, Primary: primary, Preferred: preferred}
}

func TestRunPrimaryReplicaRetriesAfterNotPrimary(t *testing.T) {
	stub := &fakeClusterStub{layouts: [][]*proto.Replica{
		{replica("n1", 1, true, false), replica("n2", 1, false, false)},
		{replica("n1", 2, false, false), replica("n2", 2, true, false)},
	}}
	c := newClientWithStubs(map[string]proto.ClusterClient{"n1": stub})

	var attempts []string
	res, err := RunPrimaryReplica(c, "orders", func(address string) (string, error) {
		attempts = append(attempts, address)
		if address == "n1" {
			return "", errs.ReplicaNotPrimary
		}
		return "committed", nil
	})
	if err != nil {
		t.Fatalf("RunPrimaryReplica: %v", err)
	}
	if res != "committed" {
		t.Fatalf("res = %q", res)
	}
	if len(attempts) != 2 || attempts[0] != "n1" || attempts[1] != "n2" {
		t.Fatalf("attempts = %v, want [n1 n2]", attempts)
	}
}

func TestRunPrimaryReplicaPropagatesApplicationError(t *testing.T) {
	stub := &fakeClusterStub{layouts: [][]*proto.Replica{
		{replica("n1", 1, true, false)},
	}}
	c := newClientWithStubs(map[string]proto.ClusterClient{"n1": stub})

	appErr := errors.New("schema violation")
	attempts := 0
	_, err := RunPrimaryReplica(c, "orders", func(address string) (string, error) {
		attempts++
		return "", appErr
	})
	if !errors.Is(err, appErr) {
		t.Fatalf("err = %v, want %v", err, appErr)
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want 1", attempts)
	}
}

func TestRunPrimaryReplicaGivesUpAfterRetryCeiling(t *testing.T) {
	stub := &fakeClusterStub{layouts: [][]*proto.Replica{
		{replica("n1", 1, true, false)},
	}}
	c := newClientWithStubs(map[string]proto.ClusterClient{"n1": stub})

	attempts := 0
	_, err := RunPrimaryReplica(c, "orders", func(address string) (string, error) {
		attempts++
		return "", errs.ReplicaNotPrimary
	})
	if !errors.Is(err, errs.ClusterNotAvailable) {
		t.Fatalf("err = %v, want %v", err, errs.ClusterNotAvailable)
	}
	if attempts != primaryRetries {
		t.Fatalf("attempts = %d, want %d", attempts, primaryRetries)
	}
}

func TestRunAnyReplicaSkipsUnreachableReplicasInOrder(t *testing.T) {
	stub := &fakeClusterStub{layouts: [][]*proto.Replica{
		{replica("n1", 1, false, true), replica("n2", 1, true, false), replica("n3", 1, false, false)},
	}}
	c := newClientWithStubs(map[string]proto.ClusterClient{"n1": stub})

	var attempts []string
	res, err := RunAnyReplica(c, "orders", func(address string) (string, error) {
		attempts = append(attempts, address)
		if address != "n3" {
			return "", errs.UnableToConnect
		}
		return "answer", nil
	})
	if err != nil {
		t.Fatalf("RunAnyReplica: %v", err)
	}
	if res != "answer" {
		t.Fatalf("res = %q", res)
	}
	if len(attempts) != 3 || attempts[0] != "n1" || attempts[1] != "n2" || attempts[2] != "n3" {
		t.Fatalf("attempts = %v, want preferred first then the rest", attempts)
	}
}

func TestRunAnyReplicaPropagatesApplicationError(t *testing.T) {
	stub := &fakeClusterStub{layouts: [][]*proto.Replica{
		{replica("n1", 1, false, true), replica("n2", 1, true, false)},
	}}
	c := newClientWithStubs(map[string]proto.ClusterClient{"n1": stub})

	appErr := errors.New("query error")
	attempts := 0
	_, err := RunAnyReplica(c, "orders", func(address string) (string, error) {
		attempts++
		return "", appErr
	})
	if !errors.Is(err, appErr) {
		t.Fatalf("err = %v, want %v", err, appErr)
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want 1", attempts)
	}
}

func TestRunAnyReplicaFailsWhenAllUnreachable(t *testing.T) {
	stub := &fakeClusterStub{layouts: [][]*proto.Replica{
		{replica("n1", 1, false, true), replica("n2", 1, true, false)},
	}}
	c := newClientWithStubs(map[string]proto.ClusterClient{"n1": stub})

	_, err := RunAnyReplica(c, "orders", func(address string) (string, error) {
		return "", errs.UnableToConnect
	})
	if !errors.Is(err, errs.ClusterUnableToConnect) {
		t.Fatalf("err = %v, want %v", err, errs.ClusterUnableToConnect)
	}
}

func TestFetchReplicasCyclesThroughMembers(t *testing.T) {
	down := &fakeClusterStub{getErr: status.Error(codes.Unavailable, "connection refused")}
	up := &fakeClusterStub{layouts: [][]*proto.Replica{
		{replica("n2", 3, true, true)},
	}}
	c := newClientWithStubs(map[string]proto.ClusterClient{"n1": down, "n2": up})

	rs, err := c.replicaSet("orders")
	if err != nil {
		t.Fatalf("replicaSet: %v", err)
	}
	if p := rs.Primary(); p == nil || p.Address != "n2" {
		t.Fatalf("primary = %v, want n2", p)
	}

	// Cached: a second lookup does not hit the members again.
	up.mu.Lock()
	calls := up.getCalls
	up.mu.Unlock()
	if _, err := c.replicaSet("orders"); err != nil {
		t.Fatalf("cached replicaSet: %v", err)
	}
	up.mu.Lock()
	defer up.mu.Unlock()
	if up.getCalls != calls {
		t.Fatalf("getCalls = %d, want %d (cache hit)", up.getCalls, calls)
	}
}

func TestReplicaSetPrimaryPicksHighestTerm(t *testing.T) {
	rs := newReplicaSet("orders", []*proto.Replica{
		replica("n1", 2, true, false),
		replica("n2", 5, true, false),
		replica("n3", 5, false, true),
	})
	if p := rs.Primary(); p == nil || p.Address != "n2" {
		t.Fatalf("primary = %v, want n2", p)
	}
	if pr := rs.Preferred(); pr == nil || pr.Address != "n3" {
		t.Fatalf("preferred = %v, want n3", pr)
	}
}

func TestReplicaSetPreferredFallsBackToFirst(t *testing.T) {
	rs := newReplicaSet("orders", []*proto.Replica{
		replica("n1", 1, false, false),
		replica("n2", 1, true, false),
	})
	if pr := rs.Preferred(); pr == nil || pr.Address != "n1" {
		t.Fatalf("preferred = %v, want n1", pr)
	}
}
