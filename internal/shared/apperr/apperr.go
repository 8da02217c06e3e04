// Package apperr defines the error taxonomy shared by usecases and the HTTP layer.
// Usecases return *Error values (usually through feature-level sentinels) and
// the transport layer translates the Kind into a status code in one place.
package apperr

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthenticated
	KindForbidden
	KindTooManyRequests
	KindUpstream
	KindUnavailable
)

var kindNames = map[Kind]string{
	KindInternal:        "internal",
	KindValidation:      "validation",
	KindNotFound:        "not_found",
	KindConflict:        "conflict",
	KindUnauthenticated: "unauthenticated",
	KindForbidden:       "forbidden",
	KindTooManyRequests: "too_many_requests",
	KindUpstream:        "upstream",
	KindUnavailable:     "unavailable",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the concrete application error.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError

	// UpstreamStatus and UpstreamBody are set for KindUpstream.
	UpstreamStatus int
	UpstreamBody   string

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind that keeps cause in the chain.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func NotFound(message string) *Error        { return New(KindNotFound, message) }
func Conflict(message string) *Error        { return New(KindConflict, message) }
func Unauthenticated(message string) *Error { return New(KindUnauthenticated, message) }
func Forbidden(message string) *Error       { return New(KindForbidden, message) }
func TooManyRequests(message string) *Error { return New(KindTooManyRequests, message) }

// Invalid reports a validation failure with field-level messages.
func Invalid(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// Upstream reports a non-success response from an external collaborator.
func Upstream(service string, status int, body string) *Error {
	return &Error{
		Kind:           KindUpstream,
		Message:        fmt.Sprintf("%s returned status %d: %s", service, status, body),
		UpstreamStatus: status,
		UpstreamBody:   body,
	}
}

// Unavailable reports a transient failure the caller may retry.
func Unavailable(message string, cause error) *Error {
	return Wrap(KindUnavailable, message, cause)
}

// KindOf returns the Kind of err. Deadline and cancellation errors that were
// not classified explicitly are treated as Unavailable.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindUnavailable
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
