package params

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/isvinogradov/paramtools/paramerrors"
)

// convertValue converts a raw string to the spec's kind. All conversion
// faults, including overflow, surface as *paramerrors.ValidationError; no
// strconv or time error escapes this layer.
func convertValue(name, raw string, spec *ParameterSpec) (any, error) {
	switch spec.Kind {
	case KindString:
		return raw, nil

	case KindInt:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, paramerrors.NewValidation(name, "type",
				fmt.Sprintf("Invalid <%s> type (int is expected)", name))
		}
		return v, nil

	case KindDecimal:
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, paramerrors.NewValidation(name, "type",
				fmt.Sprintf("Invalid <%s> type (int/float is expected)", name))
		}
		return v, nil

	case KindDate:
		// ParseInLocation treats the naive parsed date as already being in
		// the configured zone; it never converts from another zone.
		v, err := time.ParseInLocation(spec.dateFormat(), raw, spec.location())
		if err != nil {
			return nil, paramerrors.NewValidation(name, "type",
				fmt.Sprintf("Invalid <%s> type (date in %s format is expected)", name, spec.dateFormat()))
		}
		return v, nil

	case KindBool:
		switch strings.ToLower(raw) {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return nil, paramerrors.NewValidation(name, "type",
			fmt.Sprintf("<%s> is a bool parameter; allowed values are 1/true/TrUe/truE or 0/FALSE/False/false", name))

	default:
		// checkConfig rejects unknown kinds before conversion is reached.
		return nil, paramerrors.NewConfig(name, fmt.Sprintf("unknown kind %d", int(spec.Kind)))
	}
}

// checkRange applies MinValue/MaxValue to a converted numeric value.
func checkRange(name string, parsed any, spec *ParameterSpec) error {
	switch v := parsed.(type) {
	case int64:
		if spec.MinValue != nil && v < *spec.MinValue {
			return paramerrors.NewValidation(name, "min_value",
				fmt.Sprintf("Minimum value for <%s> is %d", name, *spec.MinValue))
		}
		if spec.MaxValue != nil && v > *spec.MaxValue {
			return paramerrors.NewValidation(name, "max_value",
				fmt.Sprintf("Maximum value for <%s> is %d", name, *spec.MaxValue))
		}
	case decimal.Decimal:
		if spec.MinValue != nil && v.Cmp(decimal.NewFromInt(*spec.MinValue)) < 0 {
			return paramerrors.NewValidation(name, "min_value",
				fmt.Sprintf("Minimum value for <%s> is %d", name, *spec.MinValue))
		}
		if spec.MaxValue != nil && v.Cmp(decimal.NewFromInt(*spec.MaxValue)) > 0 {
			return paramerrors.NewValidation(name, "max_value",
				fmt.Sprintf("Maximum value for <%s> is %d", name, *spec.MaxValue))
		}
	}
	return nil
}

// checkLength applies MinLength/MaxLength to the raw input string. Length
// bounds against date values are permitted by configuration but meaningless
// in practice; that pairing is the caller's responsibility.
func checkLength(name, raw string, spec *ParameterSpec) error {
	if spec.MinLength != nil && len(raw) < *spec.MinLength {
		return paramerrors.NewValidation(name, "min_length",
			fmt.Sprintf("Minimum length for <%s> is %d", name, *spec.MinLength))
	}
	if spec.MaxLength != nil && len(raw) > *spec.MaxLength {
		return paramerrors.NewValidation(name, "max_length",
			fmt.Sprintf("Maximum length for <%s> is %d", name, *spec.MaxLength))
	}
	return nil
}

// checkChoices verifies membership of the converted value in Choices and
// applies ChoicesMapping on a match. Choices fully supersede the range and
// length checks; they are never combined.
func checkChoices(name string, parsed any, spec *ParameterSpec) (any, error) {
	if !spec.choiceMember(parsed) {
		rendered := make([]string, len(spec.Choices))
		for i, c := range spec.Choices {
			rendered[i] = fmt.Sprintf("%v", c)
		}
		return nil, paramerrors.NewValidation(name, "choices",
			fmt.Sprintf("Possible values for parameter <%s> are %s", name, strings.Join(rendered, "/")))
	}
	for _, m := range spec.ChoicesMapping {
		if spec.valuesEqual(parsed, m.Key) {
			return m.Value, nil
		}
	}
	return parsed, nil
}

// caseFolder folds strings for case-insensitive choice matching.
var caseFolder = cases.Fold()

// valuesEqual compares a converted value with a declared choice or mapping
// key. Declared values commonly arrive from YAML or Go literals as int,
// float64, or string, so numeric values are normalized before comparison
// and decimals are compared by value rather than representation.
func (s *ParameterSpec) valuesEqual(a, b any) bool {
	if ad, ok := a.(decimal.Decimal); ok {
		if bd, ok := toDecimal(b); ok {
			return ad.Equal(bd)
		}
		return false
	}
	if bd, ok := b.(decimal.Decimal); ok {
		if ad, ok := toDecimal(a); ok {
			return bd.Equal(ad)
		}
		return false
	}
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		return ok && at.Equal(bt)
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return false
		}
		if s.CaseInsensitiveChoices {
			return caseFolder.String(as) == caseFolder.String(bs)
		}
		return as == bs
	}
	if ai, ok := toInt64(a); ok {
		if bi, ok := toInt64(b); ok {
			return ai == bi
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

// toInt64 normalizes integer types to int64.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	}
	return 0, false
}

// toDecimal normalizes numeric and numeric-string values to decimal.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case float64:
		return decimal.NewFromFloat(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	}
	if i, ok := toInt64(v); ok {
		return decimal.NewFromInt(i), true
	}
	return decimal.Decimal{}, false
}
