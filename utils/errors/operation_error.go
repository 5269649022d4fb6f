// ABOUTME: This file carries operation context on errors crossing layer seams
// ABOUTME: The explicit retryable flag feeds the retry classifier
package errors

import (
	"fmt"
	"time"
)

// OperationError wraps an error with the failing operation and an
// explicit retryability verdict.
type OperationError struct {
	Operation  string    `json:"operation"`
	Timestamp  time.Time `json:"timestamp"`
	Underlying error     `json:"-"`
	Retryable  bool      `json:"retryable"`
}

// NewOperationError creates a new operation error.
func NewOperationError(operation string, err error, retryable bool) *OperationError {
	return &OperationError{
		Operation:  operation,
		Timestamp:  time.Now(),
		Underlying: err,
		Retryable:  retryable,
	}
}

// Error implements the error interface.
func (oe *OperationError) Error() string {
	return fmt.Sprintf("operation '%s' failed: %v", oe.Operation, oe.Underlying)
}

// Unwrap returns the underlying error for error chain unwrapping.
func (oe *OperationError) Unwrap() error {
	return oe.Underlying
}
