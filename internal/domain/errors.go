package domain

import (
	"errors"
	"fmt"
)

// Common domain errors for input-contract violations. Degenerate geometry
// and missing per-pair scores are normal-path results, never errors; only
// malformed caller input surfaces through these.
var (
	// ErrInvalidGroupCount indicates a negative group count was supplied.
	ErrInvalidGroupCount = errors.New("invalid group count")

	// ErrNonFiniteCoordinate indicates a point with a NaN or infinite coordinate.
	ErrNonFiniteCoordinate = errors.New("non-finite coordinate")

	// ErrNonFiniteScore indicates a statement score that is NaN or infinite.
	ErrNonFiniteScore = errors.New("non-finite score")

	// ErrInvalidConfiguration indicates that configuration is invalid or incomplete.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// InputError represents a contract violation detected at the engine
// boundary. It provides context about which input and operation triggered
// the failure.
type InputError struct {
	// Field names the offending input (e.g. "clusters[urban][3]").
	Field string

	// Operation describes what was being validated when the error occurred.
	Operation string

	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface for InputError.
func (e *InputError) Error() string {
	return fmt.Sprintf("input error: operation=%s, field=%s, err=%v", e.Operation, e.Field, e.Err)
}

// Unwrap returns the underlying error, supporting Go 1.13+ error unwrapping.
func (e *InputError) Unwrap() error { return e.Err }

// NewInputError creates a new InputError with the given details.
func NewInputError(field, operation string, err error) *InputError {
	return &InputError{
		Field:     field,
		Operation: operation,
		Err:       err,
	}
}

// ValidationError represents an error that occurred during validation.
// It can contain multiple validation failures.
type ValidationError struct {
	// Entity is the name of the entity that failed validation.
	Entity string

	// Errors contains the list of validation error messages.
	Errors []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error for %s: %s", e.Entity, e.Errors[0])
	}
	return fmt.Sprintf("validation errors for %s: %v", e.Entity, e.Errors)
}

// AddError adds a new error message to the validation error.
func (e *ValidationError) AddError(msg string) { e.Errors = append(e.Errors, msg) }

// HasErrors returns true if there are any validation errors.
func (e *ValidationError) HasErrors() bool { return len(e.Errors) > 0 }

// NewValidationError creates a new ValidationError for the given entity.
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Errors: make([]string, 0),
	}
}
