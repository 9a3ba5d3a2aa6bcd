// Package errors provides custom error types for the EthicaMind backend client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrEmptyMessage    = errors.New("message cannot be empty")
	ErrInvalidResponse = errors.New("invalid response format")
)

// APIError represents a non-success HTTP response from the backend.
// Body holds the raw response body text so callers can surface it.
type APIError struct {
	StatusCode int
	Body       string
	Endpoint   string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Body)
	}
	return fmt.Sprintf("API error [%d] at %s", e.StatusCode, e.Endpoint)
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, body string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Body:       body,
	}
}

// NetworkError represents a transport-level failure: the request could
// not complete at all (connection refused, DNS failure, reset).
type NetworkError struct {
	Op       string
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("network error during %s at %s: %v", e.Op, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(op, endpoint string, err error) *NetworkError {
	return &NetworkError{Op: op, Endpoint: endpoint, Err: err}
}

// ParseError represents a response body that could not be interpreted
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(message string) *ParseError {
	return &ParseError{Message: message}
}

// IsAPIError reports whether err is a non-success HTTP response
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsNetworkError reports whether err is a transport-level failure
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// GetHTTPStatus returns the HTTP status code carried by err, or 0 when
// err is not an APIError.
func GetHTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// GetBody returns the response body carried by err, or "" when err is
// not an APIError.
func GetBody(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Body
	}
	return ""
}
