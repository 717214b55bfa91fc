package multimatic

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error returned by the multiMATIC API.
type APIError struct {
	Status   int    `json:"status"             yaml:"status"`
	Message  string `json:"message"            yaml:"message"`
	Response string `json:"response,omitempty" yaml:"response,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.Status)
}

// StatusCode returns the HTTP status carried by the error.
func (e *APIError) StatusCode() int {
	return e.Status
}

// WrongResponseError signals a 2xx response whose body could not be mapped
// to the expected shape. It wraps the underlying APIError so callers can
// still read the status.
type WrongResponseError struct {
	*APIError
}

// Error implements the error interface.
func (e *WrongResponseError) Error() string {
	return "unexpected response: " + e.APIError.Error()
}

// Unwrap exposes the underlying APIError.
func (e *WrongResponseError) Unwrap() error {
	return e.APIError
}

// NewWrongResponseError builds a WrongResponseError for a response body that
// did not match the expected shape.
func NewWrongResponseError(status int, message, response string) *WrongResponseError {
	return &WrongResponseError{
		APIError: &APIError{
			Status:   status,
			Message:  message,
			Response: response,
		},
	}
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrCredentialsRequired   = errors.New("username and password are required")
	ErrUnsupportedCacheType  = errors.New("unsupported cache type")
	ErrNATSConfigRequired    = errors.New("NATS configuration required for NATS cache")
	ErrCacheDisabled         = errors.New("cache disabled")
	ErrCacheMiss             = errors.New("key not found in cache")
	ErrKeyNotFoundInAnyCache = errors.New("key not found in any cache")
)

// StatusOf extracts the HTTP status carried by err, if any.
func StatusOf(err error) (int, bool) {
	var carrier interface{ StatusCode() int }
	if errors.As(err, &carrier) {
		return carrier.StatusCode(), true
	}

	return 0, false
}

// IsStatus checks whether the error carries the given HTTP status.
func IsStatus(err error, status int) bool {
	got, ok := StatusOf(err)

	return ok && got == status
}

// IsAPI checks if the error is (or wraps) an API error.
func IsAPI(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsWrongResponse checks if the error is (or wraps) a wrong-response error.
func IsWrongResponse(err error) bool {
	wrongErr := &WrongResponseError{}

	return errors.As(err, &wrongErr)
}

// IsSessionExpired checks whether the error signals a lost session. The
// backend answers 401 once the session cookie is gone or stale.
func IsSessionExpired(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsNoActiveMode checks whether the error is the 409-style "nothing to do"
// answer the backend gives when no quick mode or veto is active.
func IsNoActiveMode(err error) bool {
	return IsStatus(err, http.StatusConflict)
}
