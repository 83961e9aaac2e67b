package stt

import (
	"errors"
	"fmt"
)

// Kind classifies transcription failures.
type Kind int

const (
	// KindNetwork covers connection refused, DNS failure, and timeouts.
	KindNetwork Kind = iota
	// KindAuth covers 401/403 responses from the backend.
	KindAuth
	// KindServer covers 5xx and remaining 4xx responses.
	KindServer
	// KindBadResponse covers 2xx responses whose body cannot be interpreted.
	KindBadResponse
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth_error"
	case KindServer:
		return "server_error"
	case KindBadResponse:
		return "bad_response"
	default:
		return "unknown"
	}
}

// Error is a typed transcription failure. The bridge never retries or
// suppresses these; retry policy belongs to the host.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// StatusCode is the HTTP status, when one was received.
	StatusCode int
	// Message carries the raw server message, when available.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("stt: %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("stt: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a network failure.
func NewNetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
}

// NewAuthError creates an authentication failure.
func NewAuthError(statusCode int, message string) *Error {
	return &Error{Kind: KindAuth, StatusCode: statusCode, Message: message}
}

// NewServerError creates a server-side failure.
func NewServerError(statusCode int, message string) *Error {
	return &Error{Kind: KindServer, StatusCode: statusCode, Message: message}
}

// NewBadResponseError creates a failure for an uninterpretable 2xx body.
func NewBadResponseError(message string) *Error {
	return &Error{Kind: KindBadResponse, Message: message}
}

// IsNetwork checks if an error is a network failure.
func IsNetwork(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNetwork
}

// IsAuth checks if an error is an authentication failure.
func IsAuth(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindAuth
}

// IsServer checks if an error is a server-side failure.
func IsServer(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindServer
}

// IsBadResponse checks if an error is a bad-response failure.
func IsBadResponse(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindBadResponse
}
