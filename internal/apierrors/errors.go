// Package apierrors defines errors whose message is safe to return to API clients.
package apierrors

import (
	"fmt"
	"net/http"
)

// APIError is an error with an HTTP status code and a public message.
type APIError struct {
	Code    int
	Message string
	cause   error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

func newAPIError(code int, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// NewErrUnauthorized is returned for any missing, malformed, expired or forged credential.
func NewErrUnauthorized(message string) *APIError {
	return newAPIError(http.StatusUnauthorized, message)
}

// NewErrBadRequest is returned when caller input is structurally invalid.
func NewErrBadRequest(message string) *APIError {
	return newAPIError(http.StatusBadRequest, message)
}

// NewErrForbidden is returned when the caller is authenticated but not allowed.
func NewErrForbidden(message string) *APIError {
	return newAPIError(http.StatusForbidden, message)
}

// NewErrNotFound is returned when a referenced resource does not exist.
func NewErrNotFound(message string) *APIError {
	return newAPIError(http.StatusNotFound, message)
}

// NewErrConflict is returned when a resource with the same identity exists.
func NewErrConflict(message string) *APIError {
	return newAPIError(http.StatusConflict, message)
}

// NewErrInternalServerError hides err behind a generic public message.
func NewErrInternalServerError(err error) *APIError {
	return &APIError{
		Code:    http.StatusInternalServerError,
		Message: "Something went wrong on our end",
		cause:   err,
	}
}
