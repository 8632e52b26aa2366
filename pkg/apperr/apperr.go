package apperr

import (
	"errors"
	"net/http"
)

// Error is a business-rule violation carrying the HTTP status it maps to.
// Services return these; handlers translate them with StatusOf.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func BadRequest(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Code: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Code: http.StatusNotFound, Message: msg}
}

// StatusOf returns the HTTP status for err. Anything that is not an
// *apperr.Error is treated as an internal server error.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
