package errors

import (
	"errors"
	"net/http"
)

// ErrorString carries the HTTP status a handler should answer with.
type ErrorString struct {
	Code    int
	Message string
}

func (e *ErrorString) Error() string {
	return e.Message
}

func New(code int, message string) error {
	return &ErrorString{
		Code:    code,
		Message: message,
	}
}

func BadRequest(message string) error {
	return New(http.StatusBadRequest, message)
}

func UnauthorizedError(message string) error {
	return New(http.StatusUnauthorized, message)
}

func ForbiddenError(message string) error {
	return New(http.StatusForbidden, message)
}

func NotFoundError(message string) error {
	return New(http.StatusNotFound, message)
}

func UnprocessableEntity(message string) error {
	return New(http.StatusUnprocessableEntity, message)
}

func InternalServerError(message string) error {
	return New(http.StatusInternalServerError, message)
}

// ExternalServiceError marks a failed call to a collaborator service
// (payment gateway, user service). Surfaced to the caller as a bad gateway.
func ExternalServiceError(message string) error {
	return New(http.StatusBadGateway, message)
}

// HTTPCode extracts the status for a response. Unknown error types are
// reported as 500 without leaking the message mapping.
func HTTPCode(err error) int {
	var e *ErrorString
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}
