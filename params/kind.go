package params

import "github.com/isvinogradov/paramtools/paramerrors"

// Kind is the semantic target type a raw string is coerced into.
// The zero value is KindString, matching the engine's default of returning
// the raw string unconverted.
type Kind int

// Kind constants. Exactly one kind is active per spec; the tagged
// representation makes conflicting selections unrepresentable through the
// Go API.
const (
	// KindString performs no conversion; the raw string is the value.
	KindString Kind = iota
	// KindInt parses a base-10 integer and yields an int64.
	KindInt
	// KindDecimal parses an arbitrary-precision decimal and yields a
	// decimal.Decimal.
	KindDecimal
	// KindDate parses a date/time using the spec's DateFormat and localizes
	// it into the spec's Location, yielding a time.Time.
	KindDate
	// KindBool matches the literal forms 1/true and 0/false
	// case-insensitively and yields a bool.
	KindBool
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindDecimal:
		return "decimal"
	case KindDate:
		return "date"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// valid reports whether k is one of the declared kinds.
func (k Kind) valid() bool {
	return k >= KindString && k <= KindBool
}

// numeric reports whether values of this kind are checked against
// MinValue/MaxValue rather than MinLength/MaxLength.
func (k Kind) numeric() bool {
	return k == KindInt || k == KindDecimal
}

// KindFromFlags translates the flag-based kind selection used by dynamic
// declaration sources (such as YAML spec files) into a Kind. At most one
// flag may be set; conflicting flags are a ConfigError, detected before any
// input is read. No flags set selects KindString, the default.
func KindFromFlags(isInt, isDecimal, isDate, isBool bool) (Kind, error) {
	set := 0
	kind := KindString
	if isInt {
		set++
		kind = KindInt
	}
	if isDecimal {
		set++
		kind = KindDecimal
	}
	if isDate {
		set++
		kind = KindDate
	}
	if isBool {
		set++
		kind = KindBool
	}
	if set > 1 {
		return KindString, &paramerrors.ConfigError{
			Message: "at most one of (is_int, is_decimal, is_date, is_bool) may be set",
		}
	}
	return kind, nil
}
