// Package apperrors defines the error taxonomy shared by every handler:
// each error carries a kind that maps onto exactly one HTTP status, and a
// message safe to show to the client.
package apperrors

import "net/http"

type Kind int

const (
	// KindValidation covers missing or malformed input.
	KindValidation Kind = iota
	// KindAuthentication covers bad login credentials.
	KindAuthentication
	// KindUnauthorized covers requests with no valid session.
	KindUnauthorized
	// KindForbidden covers authenticated requests by a non-owner.
	KindForbidden
	// KindNotFound covers absent entities.
	KindNotFound
	// KindConflict covers referential-integrity conflicts blocking a delete.
	KindConflict
	// KindRateLimited covers rejected login attempts over the window limit.
	KindRateLimited
	// KindInternal covers unexpected data-layer failures. The message is
	// always generic; internal detail stays in the logs.
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuthentication, KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error     { return New(KindValidation, message) }
func Authentication(message string) *Error { return New(KindAuthentication, message) }
func Unauthorized(message string) *Error   { return New(KindUnauthorized, message) }
func Forbidden(message string) *Error      { return New(KindForbidden, message) }
func NotFound(message string) *Error       { return New(KindNotFound, message) }
func Conflict(message string) *Error       { return New(KindConflict, message) }
func RateLimited(message string) *Error    { return New(KindRateLimited, message) }
func Internal(message string) *Error       { return New(KindInternal, message) }
