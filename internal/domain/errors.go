package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Entity-specific errors wrap it, so callers can test for any
	// validation failure with errors.Is(err, ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTaskType is returned when a task type is not one of the known categories.
	ErrInvalidTaskType = fmt.Errorf("%w: invalid task type", ErrValidation)

	// ErrInvalidRecurrence is returned when a recurrence kind is not known.
	ErrInvalidRecurrence = fmt.Errorf("%w: invalid recurrence", ErrValidation)
)
