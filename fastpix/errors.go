package fastpix

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates the client was given no usable credentials
	ErrInvalidConfig = errors.New("must provide either username/password or an api key")
	// ErrAuthentication indicates the server rejected the credentials during validation
	ErrAuthentication = errors.New("authentication failed")
	// ErrMissingParameter indicates a required identifier was empty
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrUnsupportedMethod indicates the dispatcher was asked for a method it does not send
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")
)

// APIError is returned for every failed exchange with the FastPix API:
// transport failures, non-success status codes and undecodable bodies.
//
// Resource operations wrap the dispatcher's error in a new APIError that
// names the operation while keeping StatusCode, Body and the original error.
type APIError struct {
	// Op is the failed operation, e.g. "create live stream". Empty at the dispatcher level.
	Op string
	// StatusCode is the HTTP status, zero when no response was received.
	StatusCode int
	// Body is the raw response text.
	Body string
	// Message overrides the default description.
	Message string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface
func (e *APIError) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.StatusCode != 0:
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("request failed: %v", e.Err)
	default:
		return "request failed"
	}
}

// Unwrap returns the underlying cause
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// ParamError reports a required identifier that was not supplied.
// It is raised before any request is sent.
type ParamError struct {
	Op    string
	Param string
}

// Error implements the error interface
func (e *ParamError) Error() string {
	return fmt.Sprintf("failed to %s: %s must be provided", e.Op, e.Param)
}

// Unwrap returns ErrMissingParameter
func (e *ParamError) Unwrap() error {
	return ErrMissingParameter
}

// wrapOp annotates err with the operation that failed. API errors stay API
// errors so callers can still inspect the status code.
func wrapOp(op string, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Op:         op,
			StatusCode: apiErr.StatusCode,
			Body:       apiErr.Body,
			Err:        err,
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
