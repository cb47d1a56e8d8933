// Package apperror defines the error vocabulary shared by every layer.
//
// Two families live here:
//   - AppError, for problems with the caller's input (validation)
//   - typed upstream errors (NetworkError, RemoteServiceError,
//     MalformedResponseError) describing how a call to the GitHub API failed
//
// Every type unwraps to a sentinel, so callers can branch with errors.Is
// without caring about the concrete type, or use errors.As when they need
// the details (e.g. the status code of a RemoteServiceError).
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNetwork           = errors.New("network error")
	ErrRemoteService     = errors.New("remote service error")
	ErrMalformedResponse = errors.New("malformed response")
)

type AppError struct {
	Err     error  // actual error
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// NetworkError means the request never produced a response:
// DNS failure, refused connection, TLS handshake, cancelled context.
type NetworkError struct {
	Op  string
	Err error
}

// Network wraps a transport failure that happened while performing op.
func Network(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

// Unwrap exposes both the sentinel and the transport error, so
// errors.Is(err, context.Canceled) keeps working through the wrapper.
func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetwork, e.Err}
}

// RemoteServiceError means the remote service answered with a
// non-success status code.
type RemoteServiceError struct {
	StatusCode int
	Message    string
}

// RemoteService builds a RemoteServiceError. An empty message falls back
// to the standard status text.
func RemoteService(statusCode int, message string) *RemoteServiceError {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &RemoteServiceError{StatusCode: statusCode, Message: message}
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("remote service returned status %d: %s", e.StatusCode, e.Message)
}

func (e *RemoteServiceError) Unwrap() error {
	return ErrRemoteService
}

// MalformedResponseError means a success response carried a body that
// could not be decoded into the expected shape.
type MalformedResponseError struct {
	Err error
}

func Malformed(err error) *MalformedResponseError {
	return &MalformedResponseError{Err: err}
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() []error {
	return []error{ErrMalformedResponse, e.Err}
}

// StatusCode returns the remote status code carried anywhere in err's chain.
func StatusCode(err error) (int, bool) {
	var remote *RemoteServiceError
	if errors.As(err, &remote) {
		return remote.StatusCode, true
	}
	return 0, false
}
