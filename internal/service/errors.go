package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/dayplan/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for them.
var (
	// ErrTaskNotFound indicates that no task with the requested ID exists.
	// It is the same value as store.ErrTaskNotFound, so either can be tested.
	ErrTaskNotFound = store.ErrTaskNotFound
)

// ScheduleServiceError wraps errors from the schedule service with context.
type ScheduleServiceError struct {
	// Operation is the operation that failed (e.g., "add_task", "remove_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ScheduleServiceError.
func (e *ScheduleServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schedule service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("schedule service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ScheduleServiceError) Unwrap() error {
	return e.Err
}

// NewScheduleServiceError creates a new ScheduleServiceError.
// It returns known sentinel errors directly without wrapping.
func NewScheduleServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	return &ScheduleServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
