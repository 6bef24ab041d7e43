package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidConfig is returned when chunking configuration validation fails
	ErrInvalidConfig = errors.New("invalid chunking configuration")

	// ErrDegenerateInput is returned when a document cannot be indexed
	// (no chunks extracted, or no vocabulary terms survive stop-word removal)
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrNoDocument is returned when an operation requires an indexed document
	// and none exists
	ErrNoDocument = errors.New("no document indexed")
)

// ConfigError represents a chunking configuration error with context
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid chunking configuration for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid chunking configuration: %s", e.Message)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// DegenerateInputError represents a document that produced an unusable index:
// either chunking yielded zero chunks, or vectorization found no vocabulary.
type DegenerateInputError struct {
	Stage   string // "chunking" or "vectorization"
	Message string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input at %s: %s", e.Stage, e.Message)
}

func (e *DegenerateInputError) Is(target error) bool {
	return target == ErrDegenerateInput
}

// NewDegenerateInputError creates a new DegenerateInputError
func NewDegenerateInputError(stage, message string) *DegenerateInputError {
	return &DegenerateInputError{Stage: stage, Message: message}
}
