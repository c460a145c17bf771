package paramerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ConfigError{
			Parameter: "page",
			Message:   "conflicting kind flags",
			Cause:     cause,
		}

		msg := err.Error()
		if msg != "invalid parameter configuration for <page>: conflicting kind flags: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "invalid parameter configuration" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with parameter only", func(t *testing.T) {
		err := &ConfigError{Parameter: "order"}
		if err.Error() != "invalid parameter configuration for <order>" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ConfigError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := NewConfig("page", "bad flags")
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})

	t.Run("Is does not match ErrValidation", func(t *testing.T) {
		err := NewConfig("page", "bad flags")
		if errors.Is(err, ErrValidation) {
			t.Error("ConfigError should not match ErrValidation")
		}
	})

	t.Run("As extracts ConfigError through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading specs: %w", NewConfig("day", "unknown timezone"))

		var cfgErr *ConfigError
		if !errors.As(wrapped, &cfgErr) {
			t.Fatal("As should extract ConfigError")
		}
		if cfgErr.Parameter != "day" {
			t.Errorf("unexpected parameter: %s", cfgErr.Parameter)
		}
		if !errors.Is(wrapped, ErrConfig) {
			t.Error("wrapped ConfigError should still match ErrConfig")
		}
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error returns the message verbatim", func(t *testing.T) {
		err := NewValidation("page", "type", "Invalid <page> type (int is expected)")
		if err.Error() != "Invalid <page> type (int is expected)" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrValidation", func(t *testing.T) {
		err := NewValidation("page", "required", "<page> is a required parameter")
		if !errors.Is(err, ErrValidation) {
			t.Error("ValidationError should match ErrValidation")
		}
	})

	t.Run("Is does not match ErrConfig", func(t *testing.T) {
		err := NewValidation("page", "required", "<page> is a required parameter")
		if errors.Is(err, ErrConfig) {
			t.Error("ValidationError should not match ErrConfig")
		}
	})

	t.Run("As extracts rule and parameter", func(t *testing.T) {
		wrapped := fmt.Errorf("query binding: %w", NewValidation("tags", "max_items", "Maximum array length for <tags> is 3"))

		var verr *ValidationError
		if !errors.As(wrapped, &verr) {
			t.Fatal("As should extract ValidationError")
		}
		if verr.Rule != "max_items" {
			t.Errorf("unexpected rule: %s", verr.Rule)
		}
		if verr.Parameter != "tags" {
			t.Errorf("unexpected parameter: %s", verr.Parameter)
		}
	})

	t.Run("sentinels are distinct", func(t *testing.T) {
		if errors.Is(ErrConfig, ErrValidation) {
			t.Error("sentinels must not match each other")
		}
	})
}
