package cluster

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/9triver/conceptdb/errs"
	"github.com/9triver/conceptdb/proto"
)

// renewLeeway is how far ahead of the token's exp claim a renewal kicks in.
const renewLeeway = 30 * time.Second

// defaultTokenLifetime applies when the server hands out a token with no exp
// claim.
const defaultTokenLifetime = 5 * time.Minute

// TokenCredential attaches a username and a renewable token to every RPC.
// The token is traded for the password on first use and renewed ahead of its
// expiry claim; the trade itself authenticates through the request body, so
// it can ride the same channel.
type TokenCredential struct {
	username  string
	password  string
	transport bool

	mu       sync.Mutex
	stub     proto.ClusterClient
	token    string
	expiry   time.Time
	renewing bool
}

// NewTokenCredential builds a credential for the given user. transportSecure
// declares whether the channel carrying it is TLS-protected; gRPC refuses to
// send call credentials marked secure over plaintext.
func NewTokenCredential(username, password string, transportSecure bool) (*TokenCredential, error) {
	if username == "" {
		return nil, errs.MissingUsername
	}
	return &TokenCredential{username: username, password: password, transport: transportSecure}, nil
}

// bind points the credential at the stub used for token renewal.
func (t *TokenCredential) bind(stub proto.ClusterClient) {
	t.mu.Lock()
	if t.stub == nil {
		t.stub = stub
	}
	t.mu.Unlock()
}

func (t *TokenCredential) Username() string { return t.username }

func (t *TokenCredential) RequireTransportSecurity() bool { return t.transport }

// GetRequestMetadata implements credentials.PerRPCCredentials. The renewal
// RPC re-enters here; it is sent with only the username so it cannot recurse.
func (t *TokenCredential) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	t.mu.Lock()
	if t.renewing || t.stub == nil {
		defer t.mu.Unlock()
		return map[string]string{"username": t.username}, nil
	}
	if t.token != "" && time.Now().Before(t.expiry.Add(-renewLeeway)) {
		defer t.mu.Unlock()
		return map[string]string{"username": t.username, "token": t.token}, nil
	}
	t.renewing = true
	stub := t.stub
	t.mu.Unlock()

	token, err := t.fetchToken(ctx, stub)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.renewing = false
	if err != nil {
		return nil, err
	}
	t.token = token
	t.expiry = tokenExpiry(token)
	return map[string]string{"username": t.username, "token": t.token}, nil
}

func (t *TokenCredential) fetchToken(ctx context.Context, stub proto.ClusterClient) (string, error) {
	res, err := stub.UserToken(ctx, &proto.UserTokenReq{Username: t.username, Password: t.password})
	if err != nil {
		mapped := errs.FromRPC(err)
		if errs.IsConnectivity(mapped) {
			return "", mapped
		}
		return "", errs.CredentialInvalid.With(mapped)
	}
	return res.Token, nil
}

// tokenExpiry reads the exp claim without verifying the signature; the
// client only schedules renewal from it, it never trusts it.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Now().Add(defaultTokenLifetime)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Now().Add(defaultTokenLifetime)
	}
	return exp.Time
}
