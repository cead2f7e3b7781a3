package jsonmodels

import (
	"errors"
	"fmt"
)

// Validation error codes (exported consts for IDE completion and type safety
// by convention).
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
)

// ValidationError represents a single constraint violation raised by a
// Validator or by the model layer. It is immutable after construction.
type ValidationError struct {
	Code    string
	Message string
	// Params carries structured parameters (e.g., {"minimum": 18, "value": 17})
	// for i18n and observability.
	Params map[string]any
}

// NewValidationError creates a ValidationError with the provided code, message
// and params map. This is a convenience helper to improve readability at call
// sites with many parameters.
func NewValidationError(code, message string, params map[string]any) *ValidationError {
	return &ValidationError{Code: code, Message: message, Params: params}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsValidationError extracts a ValidationError from an error using errors.As
// internally.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ConfigurationError indicates a structurally invalid validator or model
// declaration. It surfaces at declaration time, before any data is processed,
// and is never retried.
type ConfigurationError struct {
	Message string
}

// NewConfigurationError creates a ConfigurationError with a formatted message.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// AsConfigurationError extracts a ConfigurationError from an error using
// errors.As internally.
func AsConfigurationError(err error) (*ConfigurationError, bool) {
	if err == nil {
		return nil, false
	}
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
