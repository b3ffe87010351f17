// Package services provides standardized error types for service layer operations.
package services

import (
	"errors"
	"fmt"
)

// Business logic errors. These indicate client errors (4xx responses).
var (
	// Validation errors (400 Bad Request).
	ErrWorkflowNameRequired = errors.New("workflow name is required")
	ErrInvalidSortMode      = errors.New("invalid sort mode")
	ErrInvalidTrigger       = errors.New("invalid trigger type")
	ErrMessageTooLong       = errors.New("chat message exceeds maximum length")

	// ErrEmptySubmission marks a blank free-text submit. It is not surfaced
	// as an error to the user; the submit is simply suppressed and no
	// navigation happens.
	ErrEmptySubmission = errors.New("empty submission")

	// Lookup misses (404 Not Found).
	ErrTemplateNotFound = errors.New("template not found")
)

// ServiceError wraps service-level errors with operation context.
type ServiceError struct {
	Op      string // Operation name
	Field   string // Offending field for validation errors, if any
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewValidationError creates a field-scoped validation error.
func NewValidationError(op, field, message string, err error) *ServiceError {
	return &ServiceError{
		Op:      op,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// IsValidationError checks if an error should map to HTTP 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrWorkflowNameRequired) ||
		errors.Is(err, ErrInvalidSortMode) ||
		errors.Is(err, ErrInvalidTrigger) ||
		errors.Is(err, ErrMessageTooLong)
}

// IsEmptySubmission checks for the suppressed blank-submit marker.
func IsEmptySubmission(err error) bool {
	return errors.Is(err, ErrEmptySubmission)
}

// IsTemplateNotFound checks if an error indicates a missing template.
func IsTemplateNotFound(err error) bool {
	return errors.Is(err, ErrTemplateNotFound)
}
