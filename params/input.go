package params

// rawShape discriminates the three forms a raw input can take.
type rawShape int

const (
	rawAbsent rawShape = iota
	rawSingle
	rawArray
)

// RawInput is the untyped input handed to Validate: absent (no value was
// supplied), a single string, or an ordered sequence of strings. The
// sequence form is only valid for array specs; nested arrays are not
// representable.
type RawInput struct {
	shape  rawShape
	single string
	values []string
}

// AbsentInput returns the input representing a missing value. Only a
// missing key is absent; an empty string is a present value and must be
// supplied via SingleInput.
func AbsentInput() RawInput {
	return RawInput{shape: rawAbsent}
}

// SingleInput returns the input for a single raw string value.
func SingleInput(value string) RawInput {
	return RawInput{shape: rawSingle, single: value}
}

// ArrayInput returns the input for an ordered sequence of raw string
// values. A nil or empty slice is a present, zero-length sequence, not an
// absent value.
func ArrayInput(values []string) RawInput {
	return RawInput{shape: rawArray, values: values}
}

// Absent reports whether no value was supplied.
func (r RawInput) Absent() bool {
	return r.shape == rawAbsent
}
