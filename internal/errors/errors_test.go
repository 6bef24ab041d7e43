package errors

import (
	"errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("size", "must be > 0")

	expectedMsg := "invalid chunking configuration for field 'size': must be > 0"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("Expected error to match ErrInvalidConfig sentinel")
	}

	if errors.Is(err, ErrDegenerateInput) {
		t.Error("Error should not match ErrDegenerateInput")
	}
}

func TestConfigError_NoField(t *testing.T) {
	err := NewConfigError("", "unknown strategy 'banana'")

	expectedMsg := "invalid chunking configuration: unknown strategy 'banana'"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}
}

func TestDegenerateInputError(t *testing.T) {
	err := NewDegenerateInputError("chunking", "no chunks extracted")

	expectedMsg := "degenerate input at chunking: no chunks extracted"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrDegenerateInput) {
		t.Error("Expected error to match ErrDegenerateInput sentinel")
	}

	if errors.Is(err, ErrInvalidConfig) {
		t.Error("Error should not match ErrInvalidConfig")
	}
}

func TestErrorKindsAreDistinguishable(t *testing.T) {
	configErr := NewConfigError("step_size", "must not exceed window_size")
	degenerateErr := NewDegenerateInputError("vectorization", "no terms survived stop-word removal")

	// Callers of Index() must be able to tell the two kinds apart.
	if errors.Is(configErr, ErrDegenerateInput) || errors.Is(degenerateErr, ErrInvalidConfig) {
		t.Error("Configuration and degenerate-input errors must not overlap")
	}
}
