package filter

import (
	"errors"
	"fmt"
)

// ErrNotAList is returned when a response has no list of items to filter.
var ErrNotAList = errors.New("response does not contain a list of items")

// Error types for filter operations
type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a filter could not be evaluated against an item
	EvaluationError struct {
		Expression string
		ItemID     string
		Err        error
	}
)

// Error implements the error interface
func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compilation error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

// Unwrap returns the underlying expr error
func (e *CompilationError) Unwrap() error {
	return e.Err
}

// Error implements the error interface
func (e *EvaluationError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("evaluation error for '%s' on item '%s': %v", e.Expression, e.ItemID, e.Err)
	}
	return fmt.Sprintf("evaluation error for '%s': %v", e.Expression, e.Err)
}

// Unwrap returns the underlying expr error
func (e *EvaluationError) Unwrap() error {
	return e.Err
}
