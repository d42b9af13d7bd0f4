package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation and lookup failures.
var (
	ErrEmptyModel    = errors.New("car model parameter is required")
	ErrModelTooLong  = errors.New("car model parameter is too long")
	ErrTooManyModels = errors.New("too many models")
	ErrNotFound      = errors.New("car specifications not found")
)

// ValidationError wraps a sentinel with context.
type ValidationError struct {
	Field   string
	Value   string
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s (value=%q)", e.Wrapped, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Wrapped }

// NewValidationError creates a ValidationError.
func NewValidationError(field, value string, wrapped error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Wrapped: wrapped}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
