package kube

import (
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strings"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// Sentinel errors for the two failure families of a Facade call.
// Match them with errors.Is().
var (
	// ErrConnection indicates the cluster could not be reached or the client
	// could not authenticate against it.
	ErrConnection = errors.New("cluster connection failed")

	// ErrAPI indicates the API server received the request and rejected it.
	ErrAPI = errors.New("cluster API request rejected")
)

// Connection failure reasons reported in ConnectionError.Reason.
const (
	ReasonConfig       = "config"
	ReasonTimeout      = "timeout"
	ReasonTLS          = "tls"
	ReasonUnauthorized = "unauthorized"
	ReasonUnreachable  = "unreachable"
)

// ConnectionError is returned when a call never got a usable answer from the
// API server.
type ConnectionError struct {
	Op     string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: cannot reach cluster (%s): %v", e.Op, e.Reason, e.Err)
}

// Unwrap returns the underlying client-go error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Is matches ErrConnection.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}

// APIError is returned when the API server rejected the request, for example
// because the object already exists or the namespace is missing.
type APIError struct {
	Op     string
	Reason string
	Code   int32
	Err    error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying *apierrors.StatusError.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches ErrAPI.
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// ErrorKind is a coarse classification for callers that branch on failure type.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConnection
	KindAPI
)

// String returns a short label used in logs and metric labels.
func (k ErrorKind) String() string {
	switch k {
	case KindConnection:
		return "connection_error"
	case KindAPI:
		return "api_error"
	default:
		return "unknown"
	}
}

// KindOf reports which family err belongs to.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrConnection):
		return KindConnection
	case errors.Is(err, ErrAPI):
		return KindAPI
	default:
		return KindUnknown
	}
}

// Classify wraps a client-go error in a ConnectionError or an APIError.
// Errors that are already classified are returned unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrConnection) || errors.Is(err, ErrAPI) {
		return err
	}

	// 401 is a credentials problem, not a rejection of the request itself.
	if apierrors.IsUnauthorized(err) {
		return &ConnectionError{Op: op, Reason: ReasonUnauthorized, Err: err}
	}

	var status apierrors.APIStatus
	if errors.As(err, &status) {
		return &APIError{
			Op:     op,
			Reason: string(apierrors.ReasonForError(err)),
			Code:   status.Status().Code,
			Err:    err,
		}
	}

	return &ConnectionError{Op: op, Reason: connectionReason(err), Err: err}
}

func connectionReason(err error) string {
	switch {
	case isTimeoutError(err):
		return ReasonTimeout
	case isTLSError(err):
		return ReasonTLS
	default:
		return ReasonUnreachable
	}
}

func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{"timeout", "timed out", "deadline exceeded"} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

func isTLSError(err error) bool {
	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return true
	}
	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return true
	}
	var certInvalid x509.CertificateInvalidError
	if errors.As(err, &certInvalid) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "tls:") || strings.Contains(msg, "x509:")
}
