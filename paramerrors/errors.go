// Package paramerrors provides structured error types for paramtools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between the two disjoint
// failure categories of the validation engine:
//
//   - ConfigError: a programming error in the parameter declaration itself
//     (conflicting kind flags, a choices_mapping key outside choices, an
//     input shape that contradicts the spec). Raised before any request
//     data is examined; should fail loudly at startup or first use.
//   - ValidationError: a data-dependent rejection of the caller-supplied
//     input (missing required value, wrong type, out-of-range value, bad
//     array cardinality, value outside choices). Safe to surface to HTTP
//     clients as a 400 body.
//
// # Usage with errors.Is
//
//	v, err := params.Validate("page", raw, spec)
//	if err != nil {
//	    if errors.Is(err, paramerrors.ErrConfig) {
//	        panic(err) // bad declaration, not bad input
//	    }
//	    var verr *paramerrors.ValidationError
//	    if errors.As(err, &verr) {
//	        http.Error(w, verr.Message, http.StatusBadRequest)
//	    }
//	}
package paramerrors

import "errors"

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrConfig indicates an invalid parameter declaration.
	ErrConfig = errors.New("parameter configuration error")

	// ErrValidation indicates a rejection of caller-supplied input.
	ErrValidation = errors.New("parameter validation error")
)

// ConfigError represents a programming error in a ParameterSpec declaration.
// It is detected before any input is read and is independent of request data.
type ConfigError struct {
	// Parameter is the declared parameter name, if known
	Parameter string
	// Message describes the configuration mistake
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "invalid parameter configuration"
	if e.Parameter != "" {
		msg += " for <" + e.Parameter + ">"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ValidationError represents a rejection of caller-supplied input.
// Message always identifies the parameter and the violated rule, and is
// suitable for returning verbatim to an HTTP client.
type ValidationError struct {
	// Parameter is the name of the rejected parameter
	Parameter string
	// Rule identifies the violated rule (e.g., "required", "type",
	// "min_value", "max_items", "choices")
	Rule string
	// Message is the full, client-presentable failure text
	Message string
}

// Error returns the client-presentable failure message.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidation creates a ValidationError for the given parameter and rule.
func NewValidation(parameter, rule, message string) *ValidationError {
	return &ValidationError{
		Parameter: parameter,
		Rule:      rule,
		Message:   message,
	}
}

// NewConfig creates a ConfigError for the given parameter.
func NewConfig(parameter, message string) *ConfigError {
	return &ConfigError{
		Parameter: parameter,
		Message:   message,
	}
}
