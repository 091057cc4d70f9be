// Package errs defines the driver's error taxonomy. Every error the driver
// raises itself carries a stable bracketed code so callers can match on kind
// with errors.Is; server application errors pass through verbatim.
package errs

import (
	"fmt"
)

type Error struct {
	Code    string
	Message string
	cause   error
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches on the code, so a wrapped instance compares equal to its
// package-level template.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// With returns a copy of e carrying cause, preserving the code for Is.
func (e *Error) With(cause error) *Error {
	return &Error{Code: e.Code, Message: e.Message, cause: cause}
}

// Withf returns a copy of e with details formatted into the message.
func (e *Error) Withf(format string, args ...any) *Error {
	return &Error{Code: e.Code, Message: e.Message + ": " + fmt.Sprintf(format, args...)}
}

// Client errors: user-facing failures of the driver itself.
var (
	ClientClosed           = newError("CLI01", "the client has been closed and no further operation is allowed")
	SessionClosed          = newError("CLI02", "the session has been closed and no further operation is allowed")
	TransactionClosed      = newError("CLI03", "the transaction has been closed and no further operation is allowed")
	UnableToConnect        = newError("CLI04", "unable to connect to the server")
	MissingDBName          = newError("CLI05", "database name cannot be empty")
	DatabaseDoesNotExist   = newError("CLI06", "the database does not exist")
	MissingResponse        = newError("CLI07", "unexpected empty response")
	UnknownRequestID       = newError("CLI08", "received a response with an unknown request id")
	ClusterUnableToConnect = newError("CLI09", "unable to connect to any cluster member")
	ReplicaNotPrimary      = newError("CLI10", "the replica is not the primary replica")
	ClusterNotAvailable    = newError("CLI11", "attempted connecting to all cluster members but none were available")
	UserDoesNotExist       = newError("CLI12", "the user does not exist")
	MissingUsername        = newError("CLI13", "username cannot be empty")
)

// Authentication errors: surfaced directly, never retried.
var (
	CredentialInvalid = newError("AUT01", "invalid credential supplied")
	TokenExpired      = newError("AUT02", "token credential has expired")
)

// Encryption errors: classified from the transport failure so each is
// user-actionable.
var (
	TLSHandshakeFailed   = newError("ENC01", "TLS handshake with the server failed")
	TLSUntrustedCA       = newError("ENC02", "the server certificate is not signed by a trusted authority")
	TLSHostnameMismatch  = newError("ENC03", "the server certificate does not match the server hostname")
	EndpointNotEncrypted = newError("ENC04", "the server endpoint does not speak TLS")
)

// Internal errors: protocol violations, unrecoverable for the stream they
// occur on.
var (
	IllegalState     = newError("INT01", "illegal state has been reached")
	IllegalArgument  = newError("INT02", "illegal argument provided")
	UnexpectedServer = newError("INT03", "server message carries neither a response nor a response part")
)

// Concept errors.
var (
	InvalidConceptCasting = newError("CON01", "invalid concept conversion")
	MissingLabel          = newError("CON02", "label cannot be empty")
	MissingIID            = newError("CON03", "iid cannot be empty")
)
