package params

import (
	"fmt"
	"time"

	"github.com/isvinogradov/paramtools/paramerrors"
)

// DefaultDateFormat is the layout used for KindDate when the spec does not
// override DateFormat.
const DefaultDateFormat = "2006-01-02"

// ChoiceMapping is a single key→value remap entry consulted after a value
// has matched Choices. Entries are ordered pairs rather than a Go map so
// that decimal and date values, which are not meaningfully comparable as
// map keys, can participate.
type ChoiceMapping struct {
	// Key must be a member of the spec's Choices.
	Key any
	// Value replaces the parsed value when Key matches it.
	Value any
}

// ParameterSpec is the declarative, immutable configuration for one
// parameter. Construct it once (as a package-level value or at startup) and
// reuse it across requests; the engine never mutates it.
//
// All bound fields are pointers so that "not configured" is distinguishable
// from a zero bound; use Int and Int64 for inline construction.
type ParameterSpec struct {
	// Kind selects the target type. Zero value is KindString.
	Kind Kind

	// IsArray declares the input as an ordered sequence of strings.
	// Each element is validated through the same single-value procedure.
	IsArray bool

	// Required rejects absent input. An empty string is present, not
	// absent: callers wanting "empty string means missing" must normalize
	// before invoking the engine.
	Required bool

	// IgnoreErrors instructs the binding layer to discard a fully computed
	// validation failure and return Default instead. The engine itself
	// always reports the failure; only callers apply this policy.
	// Configuration errors are never ignored.
	IgnoreErrors bool

	// Default is returned verbatim when an optional parameter is absent.
	// No coercion or constraint checking is applied to it.
	Default any

	// MinValue and MaxValue bound numeric kinds (KindInt, KindDecimal).
	MinValue *int64
	MaxValue *int64

	// MinLength and MaxLength bound the input length for non-numeric kinds.
	MinLength *int
	MaxLength *int

	// MinItems and MaxItems bound the sequence length when IsArray is set.
	MinItems *int
	MaxItems *int

	// Choices is an enumerated allow-list. When configured it fully
	// supersedes MinValue/MaxValue and MinLength/MaxLength. Membership is
	// checked against the value after type conversion.
	Choices []any

	// ChoicesMapping remaps a value that matched Choices. Every key must be
	// a member of Choices; violating this is a configuration error.
	ChoicesMapping []ChoiceMapping

	// CaseInsensitiveChoices matches string choices under Unicode case
	// folding. Non-string choices are unaffected.
	CaseInsensitiveChoices bool

	// DateFormat is the Go time layout for KindDate.
	// Defaults to DefaultDateFormat.
	DateFormat string

	// Location is the timezone attached to a parsed date. Parsing localizes
	// the naive date into this zone; it never converts from another zone.
	// Defaults to UTC.
	Location *time.Location
}

// Int returns a pointer to v, for inline bound construction.
func Int(v int) *int { return &v }

// Int64 returns a pointer to v, for inline bound construction.
func Int64(v int64) *int64 { return &v }

// dateFormat returns the effective date layout.
func (s *ParameterSpec) dateFormat() string {
	if s.DateFormat != "" {
		return s.DateFormat
	}
	return DefaultDateFormat
}

// location returns the effective timezone.
func (s *ParameterSpec) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.UTC
}

// Check validates the spec itself without reading any input. Call it at the
// point of declaration to fail loudly on programming errors before the
// first request arrives; Validate repeats the same check on every call.
func (s *ParameterSpec) Check(name string) error {
	return s.checkConfig(name)
}

// checkConfig validates the spec itself. It runs unconditionally on every
// Validate call, before any input is examined, because a bad spec is a
// caller programming error rather than a data-dependent outcome.
func (s *ParameterSpec) checkConfig(name string) error {
	if !s.Kind.valid() {
		return paramerrors.NewConfig(name, fmt.Sprintf("unknown kind %d", int(s.Kind)))
	}
	if len(s.ChoicesMapping) > 0 && len(s.Choices) == 0 {
		return paramerrors.NewConfig(name, "choices_mapping requires choices")
	}
	for _, m := range s.ChoicesMapping {
		if !s.choiceMember(m.Key) {
			return paramerrors.NewConfig(name, fmt.Sprintf("choices_mapping key %v is not a member of choices", m.Key))
		}
	}
	return nil
}

// choiceMember reports whether v is a member of Choices under the spec's
// equality rules.
func (s *ParameterSpec) choiceMember(v any) bool {
	for _, c := range s.Choices {
		if s.valuesEqual(v, c) {
			return true
		}
	}
	return false
}
