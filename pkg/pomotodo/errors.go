package pomotodo

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents an error response from the Pomotodo API.
type Error struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Code is the machine-readable error code from the response body,
	// empty when the body was not in the documented error format.
	Code string
	// Message is the human-readable description of the failure.
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("pomotodo: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("pomotodo: %s (status %d)", e.Message, e.StatusCode)
}

// apiError is the JSON structure of an API error body.
type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// IsUnauthorized returns true if the error indicates a missing, invalid,
// or expired access token.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsNotFound returns true if the error indicates the resource does not exist.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsRateLimited returns true if the error indicates the API rate limit
// was exceeded.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

// IsServerError returns true if the error indicates a 5xx failure on the
// service side.
func IsServerError(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return false
}

// hasStatus checks if the error is an API error with the given status.
func hasStatus(err error, status int) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}
