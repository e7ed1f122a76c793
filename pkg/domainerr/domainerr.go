// Package domainerr classifies errors a caller can act on.
//
// Validation and conflict errors are final; only availability errors are
// worth retrying. Anything that is not a *Error is treated as unavailable.
package domainerr

import (
	"errors"
	"net/http"
)

// Kind groups domain errors by how a caller should react.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindForbidden   Kind = "forbidden"
	KindConflict    Kind = "conflict"
	KindUnavailable Kind = "unavailable"
	KindRateLimited Kind = "rate_limited"
)

// Error is a classified domain error. Code is a stable machine-readable name.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *Error { return New(KindValidation, code, message) }

func NotFound(code, message string) *Error { return New(KindNotFound, code, message) }

func Forbidden(code, message string) *Error { return New(KindForbidden, code, message) }

func Conflict(code, message string) *Error { return New(KindConflict, code, message) }

func Unavailable(code, message string) *Error { return New(KindUnavailable, code, message) }

func RateLimited(code, message string) *Error { return New(KindRateLimited, code, message) }

// KindOf reports the kind of err. Unclassified errors are KindUnavailable.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnavailable
}

// CodeOf returns the code of a classified error, or "unavailable".
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return "unavailable"
}

// IsRetryable reports whether the caller may retry the operation.
func IsRetryable(err error) bool {
	return err != nil && KindOf(err) == KindUnavailable
}

// HTTPStatus maps an error to the status code used at the HTTP boundary.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusServiceUnavailable
	}
}
