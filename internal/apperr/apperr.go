// Package apperr classifies domain errors into the kinds the HTTP boundary
// understands and renders them in a single response envelope.
package apperr

import (
	"errors"
	"net/http"
)

// Kind is the classification of an error at the service boundary.
type Kind int

const (
	// KindInternal is an unexpected or persistence failure.
	KindInternal Kind = iota
	// KindInvalid is a malformed or incomplete request body.
	KindInvalid
	// KindValidation is well-formed input that breaks a domain rule.
	KindValidation
	// KindUnauthenticated means no valid identity was presented.
	KindUnauthenticated
	// KindForbidden means the identity failed an ownership predicate.
	KindForbidden
	// KindNotFound means a referenced aggregate or user does not exist.
	KindNotFound
	// KindConflict is a uniqueness or duplicate membership violation.
	KindConflict
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindValidation:
		return "validation"
	case KindUnauthenticated:
		return "unauthenticated"
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

// Status maps the kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindInvalid:
		return http.StatusBadRequest
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUnauthenticated:
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

// Error is a classified error with a machine-readable code.
// Values are meant to be declared once as package-level sentinels and
// compared with errors.Is.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

// New creates a classified sentinel error.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

var (
	// ErrInvalidRequest is returned for bodies that fail to bind.
	ErrInvalidRequest = New(KindInvalid, "INVALID_REQUEST", "invalid request body")
	// ErrUnauthenticated is returned when no identity is resolved for the request.
	ErrUnauthenticated = New(KindUnauthenticated, "UNAUTHENTICATED", "authentication required")
	// ErrForbidden is returned when an ownership predicate rejects the actor.
	ErrForbidden = New(KindForbidden, "FORBIDDEN", "user does not have the required permissions")
	// ErrInternal is the only internal error shape ever shown to clients.
	ErrInternal = New(KindInternal, "INTERNAL_ERROR", "internal server error")
)

// As extracts the classified error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err. Unclassified errors are internal.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}
