// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
)

// ValidationError indicates a configuration file could not be loaded or
// failed its structural checks.
type ValidationError struct {
	Cause   error
	Field   string   // File or field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	if len(e.Details) > 0 {
		msg = fmt.Sprintf("%s (%d issues)", msg, len(e.Details))
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// WrapValidationError creates a validation error caused by err.
func WrapValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Cause:   err,
		Field:   field,
		Message: message,
	}
}

// ConfigurationError indicates a tool configuration or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}

// ValidationFailedError indicates the checked configurations contain errors.
// Commands return it to signal a non-zero exit after the report was written.
type ValidationFailedError struct {
	Invalid int
	Total   int
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("%d of %d configuration(s) failed validation", e.Invalid, e.Total)
}

// NewValidationFailedError creates a new validation failed error.
func NewValidationFailedError(invalid, total int) *ValidationFailedError {
	return &ValidationFailedError{Invalid: invalid, Total: total}
}
