package errs

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server-embedded codes recognized in a gRPC status description. The server
// places these in the message body because gRPC status codes are too coarse
// to distinguish routing errors from ordinary failures.
const (
	serverCodeReplicaNotPrimary = "[RPL01]"
	serverCodeCredentialInvalid = "[AUT01]"
	serverCodeTokenExpired      = "[AUT02]"
)

// FromRPC maps a gRPC call error onto the driver taxonomy. Application-level
// server errors pass through verbatim.
func FromRPC(err error) error {
	if err == nil {
		return nil
	}
	s, ok := status.FromError(err)
	if !ok {
		return err
	}
	desc := s.Message()
	switch {
	case strings.Contains(desc, serverCodeReplicaNotPrimary):
		return ReplicaNotPrimary.With(err)
	case strings.Contains(desc, serverCodeCredentialInvalid):
		return CredentialInvalid.With(err)
	case strings.Contains(desc, serverCodeTokenExpired):
		return TokenExpired.With(err)
	}
	switch s.Code() {
	case codes.Unavailable:
		return classifyUnavailable(err, desc)
	case codes.Canceled:
		return UnableToConnect.With(err)
	case codes.Unknown:
		// RST_STREAM during server shutdown arrives as Unknown.
		if strings.Contains(desc, "RST_STREAM") {
			return UnableToConnect.With(err)
		}
		return err
	default:
		return err
	}
}

// classifyUnavailable inspects a transport-level failure for the TLS causes
// worth telling apart. grpc-go folds the handshake error into the status
// description, so both the cause chain and the description are checked.
func classifyUnavailable(err error, desc string) error {
	var (
		unknownAuthority x509.UnknownAuthorityError
		hostnameMismatch x509.HostnameError
		recordHeader     tls.RecordHeaderError
	)
	switch {
	case errors.As(err, &unknownAuthority) || strings.Contains(desc, "certificate signed by unknown authority"):
		return TLSUntrustedCA.With(err)
	case errors.As(err, &hostnameMismatch) || strings.Contains(desc, "certificate is valid for"):
		return TLSHostnameMismatch.With(err)
	case errors.As(err, &recordHeader) || strings.Contains(desc, "first record does not look like a TLS handshake"):
		return EndpointNotEncrypted.With(err)
	case strings.Contains(desc, "handshake"):
		return TLSHandshakeFailed.With(err)
	default:
		return UnableToConnect.With(err)
	}
}

// IsConnectivity reports whether err is a connectivity-class failure, the
// kind that justifies trying another replica.
func IsConnectivity(err error) bool {
	return errors.Is(err, UnableToConnect) || errors.Is(err, ClusterUnableToConnect)
}
