package apperror

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies an error into the HTTP status it maps to at the edge.
type Kind int

const (
	KindBadRequest Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindInternal
)

type Error struct {
	Kind     Kind
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

func newError(kind Kind, msgs ...string) *Error {
	return &Error{Kind: kind, Messages: msgs}
}

func BadRequest(msgs ...string) *Error     { return newError(KindBadRequest, msgs...) }
func Unauthenticated(msg string) *Error    { return newError(KindUnauthenticated, msg) }
func Forbidden(msg string) *Error          { return newError(KindForbidden, msg) }
func NotFound(msg string) *Error           { return newError(KindNotFound, msg) }
func Internal(msg string) *Error           { return newError(KindInternal, msg) }

// Status maps any error to an HTTP status code. Errors without a Kind
// are treated as internal.
func Status(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Payload returns the value serialized as the "msg" field of an error
// response: a single string, or a list when several validation messages
// accumulated. Internal errors always collapse to a generic message.
func Payload(err error) any {
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Kind == KindInternal {
		return "something went wrong"
	}
	if len(appErr.Messages) == 1 {
		return appErr.Messages[0]
	}
	return appErr.Messages
}
