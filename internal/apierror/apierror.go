// Package apierror defines the typed failures raised by the service layer
// and the canonical error envelopes returned to clients. Services raise
// *Error values; the HTTP layer maps Error.Status to the response code and
// anything else to a 500, so internal details (stack traces, DB errors)
// never leak to clients.
package apierror

import (
	"errors"
	"net/http"
)

// Error is a failure carrying an HTTP-analogous status code.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"detail"`
}

func (e *Error) Error() string { return e.Message }

// BadRequest signals malformed or missing caller input.
func BadRequest(msg string) *Error {
	if msg == "" {
		msg = "bad request"
	}
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// NotFound signals that a referenced entity does not exist or is deleted.
func NotFound(msg string) *Error {
	if msg == "" {
		msg = "not found"
	}
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Unauthorized signals missing or invalid credentials.
func Unauthorized(msg string) *Error {
	if msg == "" {
		msg = "unauthorized"
	}
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// Forbidden signals valid credentials without sufficient permissions.
func Forbidden(msg string) *Error {
	if msg == "" {
		msg = "forbidden"
	}
	return &Error{Status: http.StatusForbidden, Message: msg}
}

// Internal signals an unexpected failure. Raw persistence errors are
// normally propagated unwrapped and mapped to 500 at the boundary instead.
func Internal(msg string) *Error {
	if msg == "" {
		msg = "internal server error"
	}
	return &Error{Status: http.StatusInternalServerError, Message: msg}
}

// StatusOf returns the HTTP status carried by err, or 500 for any error
// that is not an *Error (e.g. a raw persistence failure).
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors from request binding.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation error", Fields: fields}
}
