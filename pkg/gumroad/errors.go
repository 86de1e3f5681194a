package gumroad

import (
	"errors"
	"fmt"
	"net/http"
)

// Configuration errors.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrSecretsRequired = errors.New("provide a secrets mapping or a secrets file location")
	ErrHostRequired    = errors.New("secrets are missing the gumroad host")
	ErrTokenRequired   = errors.New("secrets are missing the gumroad token")
)

// Other static errors that can be wrapped with context.
var (
	ErrProductIDRequired   = errors.New("product ID is required")
	ErrOfferCodeIDRequired = errors.New("offer code ID is required")
	ErrNoMoreItems         = errors.New("no more items")
)

// APIError represents a failed request to the Gumroad API: a non-success HTTP
// status or a response body with "success": false.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Message    string `json:"message"     yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gumroad API error (status %d)", e.StatusCode)
	}

	return fmt.Sprintf("gumroad API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsRateLimited checks if the error is a too-many-requests error. The client
// does not handle rate limits itself; callers can use this to branch.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}
