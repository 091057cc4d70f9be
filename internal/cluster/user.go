package cluster

import (
	"context"

	"github.com/9triver/conceptdb/errs"
	"github.com/9triver/conceptdb/proto"
)

// UserManager runs user administration RPCs against the first reachable
// cluster member.
type UserManager struct {
	client *Client
}

func (m *UserManager) All() ([]string, error) {
	return runOnAnyMember(m.client, func(ctx context.Context, stub proto.ClusterClient) ([]string, error) {
		res, err := stub.UsersAll(ctx, &proto.UserManagerAllReq{})
		if err != nil {
			return nil, err
		}
		return res.Usernames, nil
	})
}

func (m *UserManager) Contains(username string) (bool, error) {
	if username == "" {
		return false, errs.MissingUsername
	}
	return runOnAnyMember(m.client, func(ctx context.Context, stub proto.ClusterClient) (bool, error) {
		res, err := stub.UsersContains(ctx, &proto.UserManagerContainsReq{Username: username})
		if err != nil {
			return false, err
		}
		return res.Contains, nil
	})
}

func (m *UserManager) Create(username, password string) error {
	if username == "" {
		return errs.MissingUsername
	}
	_, err := runOnAnyMember(m.client, func(ctx context.Context, stub proto.ClusterClient) (struct{}, error) {
		_, err := stub.UsersCreate(ctx, &proto.UserManagerCreateReq{Username: username, Password: password})
		return struct{}{}, err
	})
	return err
}

func (m *UserManager) Delete(username string) error {
	if username == "" {
		return errs.MissingUsername
	}
	_, err := runOnAnyMember(m.client, func(ctx context.Context, stub proto.ClusterClient) (struct{}, error) {
		_, err := stub.UsersDelete(ctx, &proto.UserManagerDeleteReq{Username: username})
		return struct{}{}, err
	})
	return err
}

func (m *UserManager) SetPassword(username, password string) error {
	if username == "" {
		return errs.MissingUsername
	}
	_, err := runOnAnyMember(m.client, func(ctx context.Context, stub proto.ClusterClient) (struct{}, error) {
		_, err := stub.UserPasswordSet(ctx, &proto.UserPasswordSetReq{Username: username, Password: password})
		return struct{}{}, err
	})
	return err
}

// runOnAnyMember cycles through cluster members until one answers. Only
// connectivity failures advance; anything else propagates.
func runOnAnyMember[T any](c *Client, op func(ctx context.Context, stub proto.ClusterClient) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for _, address := range c.memberAddresses() {
		stub, err := c.memberStub(address)
		if err != nil {
			lastErr = err
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		res, err := op(ctx, stub)
		cancel()
		if err == nil {
			return res, nil
		}
		mapped := errs.FromRPC(err)
		if !errs.IsConnectivity(mapped) {
			return zero, mapped
		}
		lastErr = mapped
	}
	return zero, errs.ClusterUnableToConnect.With(lastErr)
}
