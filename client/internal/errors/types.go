// Package errors classifies failures surfaced by the client SDK so callers can
// tell a broken connection from an unexpected payload.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory records where in the request cycle an error happened.
type ErrorCategory int

const (
	// Transport errors never produced an HTTP response.
	// Examples: DNS failure, TLS handshake, timeout, canceled context.
	Transport ErrorCategory = iota

	// Decode errors got a 2xx response whose body is not the expected JSON.
	Decode

	// Status errors got a non-2xx response on a read call.
	Status

	// Encode errors never left the client: the request body could not be
	// marshaled to JSON.
	Encode
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Transport:
		return "Transport"
	case Decode:
		return "Decode"
	case Status:
		return "Status"
	case Encode:
		return "Encode"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps an error with the operation and HTTP metadata.
type ClassifiedError struct {
	Category   ErrorCategory
	Op         string
	StatusCode int    // 0 for transport errors
	Body       string // response body, when there was one
	Message    string // Feedly errorMessage, when the body carried one
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	switch {
	case e.StatusCode > 0 && e.Message != "":
		return fmt.Sprintf("[%s] %s: HTTP %d: %s", e.Category, e.Op, e.StatusCode, e.Message)
	case e.StatusCode > 0:
		return fmt.Sprintf("[%s] %s: HTTP %d: %v", e.Category, e.Op, e.StatusCode, e.Underlying)
	default:
		return fmt.Sprintf("[%s] %s: %v", e.Category, e.Op, e.Underlying)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// Is reports whether err is a ClassifiedError of the given category.
func Is(err error, c ErrorCategory) bool {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Category == c
	}
	return false
}
