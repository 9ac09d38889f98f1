// Package apperr holds the error taxonomy shared by services and handlers.
// Handlers translate an *Error into an HTTP status exactly once, at the boundary.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
)

// AuthReason says why authentication failed. It is logged, never sent to clients.
type AuthReason string

const (
	ReasonInvalidCredentials AuthReason = "invalid_credentials"
	ReasonInvalidSignature   AuthReason = "invalid_signature"
	ReasonExpired            AuthReason = "expired"
	ReasonMalformed          AuthReason = "malformed"
	ReasonUserNotFound       AuthReason = "user_not_found"
	ReasonMissingToken       AuthReason = "missing_token"
)

// Error is an application error carrying a kind and a client-safe detail.
type Error struct {
	Kind   Kind
	Reason AuthReason
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Detail + ": " + e.Err.Error()
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(detail string) *Error {
	return &Error{Kind: KindValidation, Detail: detail}
}

func Conflict(detail string) *Error {
	return &Error{Kind: KindConflict, Detail: detail}
}

func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

func Auth(reason AuthReason, detail string) *Error {
	return &Error{Kind: KindAuth, Reason: reason, Detail: detail}
}

// Internal wraps an unexpected failure. The wrapped error is for logs only.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Detail: "Internal server error", Err: err}
}

// From extracts an *Error from err, treating anything else as internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// ReasonOf returns the auth reason carried by err, or "" when there is none.
func ReasonOf(err error) AuthReason {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	return ""
}
