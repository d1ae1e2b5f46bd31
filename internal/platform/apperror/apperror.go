// Package apperror defines the error taxonomy shared by every HTTP handler.
// Handlers classify failures into an *Error and hand them to gin with c.Error;
// the terminal error middleware is the only place that turns them into a response.
package apperror

import (
	"errors"
	"net/http"
)

// Kind identifies the class of failure.
type Kind int

const (
	// KindInternal is any failure that was not classified. Its message is never shown to clients.
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// InternalMessage is the only message sent to clients for unclassified failures.
const InternalMessage = "An error occurred on the server"

// String returns a short name for logging.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Status maps a Kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure carrying the client-facing message and the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error.
func (e *Error) Status() int { return e.Kind.Status() }

// New creates an *Error of the given kind.
func New(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// BadRequest is for malformed input or identifiers (400).
func BadRequest(message string, cause error) *Error {
	return New(KindBadRequest, message, cause)
}

// Unauthorized is for missing or invalid credentials and tokens (401).
func Unauthorized(message string, cause error) *Error {
	return New(KindUnauthorized, message, cause)
}

// Forbidden is for ownership violations (403).
func Forbidden(message string, cause error) *Error {
	return New(KindForbidden, message, cause)
}

// NotFound is for identifiers that match no record (404).
func NotFound(message string, cause error) *Error {
	return New(KindNotFound, message, cause)
}

// Conflict is for unique-field collisions such as a duplicate email (409).
func Conflict(message string, cause error) *Error {
	return New(KindConflict, message, cause)
}

// Internal wraps an unexpected failure. The cause is logged, never returned to the client.
func Internal(cause error) *Error {
	return New(KindInternal, InternalMessage, cause)
}

// Resolve returns the status code and client-facing message for any error.
// Errors that are not *Error, and *Error values of KindInternal, resolve to 500
// with InternalMessage.
func Resolve(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Status(), appErr.Message
	}
	return http.StatusInternalServerError, InternalMessage
}

// KindOf returns the Kind of err, or KindInternal when err is unclassified.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
