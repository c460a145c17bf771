package params

import (
	"fmt"

	"github.com/isvinogradov/paramtools/paramerrors"
)

// Validate runs the full pipeline for one parameter: configuration
// validation, presence resolution, then coercion and constraint checking.
//
// The returned value is one of:
//   - the spec's Default, verbatim, when an optional parameter is absent
//   - a single scalar (string, int64, decimal.Decimal, time.Time, or bool)
//   - an ordered []any of such scalars when IsArray is set
//
// Failures are *paramerrors.ConfigError for mistakes in the spec itself and
// *paramerrors.ValidationError for rejected input. No partial results are
// ever returned: the first failure aborts the whole call.
func Validate(name string, raw RawInput, spec *ParameterSpec) (any, error) {
	if spec == nil {
		return nil, paramerrors.NewConfig(name, "nil ParameterSpec")
	}
	// Config errors are reported even when the parameter is never present
	// in the request; they are programming errors, not data outcomes.
	if err := spec.checkConfig(name); err != nil {
		return nil, err
	}

	if raw.Absent() {
		if spec.Required {
			return nil, paramerrors.NewValidation(name, "required",
				fmt.Sprintf("<%s> is a required parameter", name))
		}
		// Optional and absent: the default is trusted as-is, with no
		// coercion and no constraint checking.
		return spec.Default, nil
	}

	if spec.IsArray != (raw.shape == rawArray) {
		if spec.IsArray {
			return nil, paramerrors.NewConfig(name, "array spec requires ArrayInput")
		}
		return nil, paramerrors.NewConfig(name, "ArrayInput requires an array spec")
	}

	if spec.IsArray {
		return validateArray(name, raw.values, spec)
	}
	return validateSingle(name, raw.single, spec)
}

// validateArray checks sequence cardinality and then runs the single-value
// procedure per element in input order, failing fast on the first bad
// element.
func validateArray(name string, values []string, spec *ParameterSpec) ([]any, error) {
	if spec.MinItems != nil && len(values) < *spec.MinItems {
		return nil, paramerrors.NewValidation(name, "min_items",
			fmt.Sprintf("Minimum array length for <%s> is %d", name, *spec.MinItems))
	}
	if spec.MaxItems != nil && len(values) > *spec.MaxItems {
		return nil, paramerrors.NewValidation(name, "max_items",
			fmt.Sprintf("Maximum array length for <%s> is %d", name, *spec.MaxItems))
	}

	result := make([]any, len(values))
	for i, v := range values {
		converted, err := validateSingle(name, v, spec)
		if err != nil {
			return nil, err
		}
		result[i] = converted
	}
	return result, nil
}

// validateSingle is the shared single-value procedure used by both the
// scalar and array paths: type conversion, then range/length checks, then
// choices. Choices, when configured, fully replace the range/length checks.
func validateSingle(name, raw string, spec *ParameterSpec) (any, error) {
	parsed, err := convertValue(name, raw, spec)
	if err != nil {
		return nil, err
	}

	// Bool matching is a complete check in itself: a matched literal is
	// returned without consulting range, length, or choices.
	if spec.Kind == KindBool {
		return parsed, nil
	}

	if len(spec.Choices) == 0 {
		if spec.Kind.numeric() {
			if err := checkRange(name, parsed, spec); err != nil {
				return nil, err
			}
		} else {
			if err := checkLength(name, raw, spec); err != nil {
				return nil, err
			}
		}
		return parsed, nil
	}

	return checkChoices(name, parsed, spec)
}
