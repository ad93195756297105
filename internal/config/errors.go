package config

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates an explicitly requested file doesn't exist.
	ErrFileNotFound = errors.Base("config file not found")

	// ErrInvalidValue indicates a setting has the wrong type.
	ErrInvalidValue = errors.Base("invalid setting value")

	// ErrValidationFailed indicates a setting is out of its allowed range.
	ErrValidationFailed = errors.Base("validation failed")
)

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Path is the setting path that failed validation.
	Path string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Path, e.Message, e.Value)
}

// Unwrap lets callers match ErrValidationFailed with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
