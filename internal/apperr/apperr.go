// Package apperr defines the error taxonomy surfaced at the API boundary.
// Validation failures carry a Kind so handlers can answer with the right
// status code; storage and collaborator failures are wrapped as Unavailable
// so callers can tell "your request was invalid" from "try again later".
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Unknown Kind = iota
	NotFound
	Forbidden
	InvalidTransition
	ChatLocked
	InvalidArgument
	Conflict
	Unauthorized
	Unavailable
)

// Code is the stable machine-readable name included in error responses.
func (k Kind) Code() string {
	switch k {
	case NotFound:
		return "not_found"
	case Forbidden:
		return "forbidden"
	case InvalidTransition:
		return "invalid_transition"
	case ChatLocked:
		return "chat_locked"
	case InvalidArgument:
		return "invalid_argument"
	case Conflict:
		return "conflict"
	case Unauthorized:
		return "unauthorized"
	case Unavailable:
		return "unavailable"
	}
	return "internal"
}

// HTTPStatus maps a kind to the status code the handlers respond with.
func (k Kind) HTTPStatus() int {
	switch k {
	case NotFound:
		return http.StatusNotFound
	case Forbidden, ChatLocked:
		return http.StatusForbidden
	case InvalidTransition:
		return http.StatusUnprocessableEntity
	case InvalidArgument:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	case Unauthorized:
		return http.StatusUnauthorized
	case Unavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// Error is a kind-tagged error. Message is safe to show to API callers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind.Code(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind.Code(), e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a typed error with a caller-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf is New with formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error with a kind, keeping it reachable for errors.Is.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain, Unknown if untagged.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsKind reports whether the error chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
