// Package specfile loads parameter spec sets from YAML documents.
//
// It exists for dynamic declaration sources: services that keep their
// parameter contracts in configuration rather than Go code. The YAML
// surface mirrors the flag-based declaration style, so the mutual-exclusion
// check of the kind flags is performed at load time and conflicting flags
// are rejected with a ConfigError before any request is served.
//
// Example document:
//
//	parameters:
//	  page:
//	    is_int: true
//	    required: true
//	    min_value: 1
//	  tags:
//	    is_array: true
//	    min_items: 1
//	    max_items: 10
//	  day:
//	    is_date: true
//	    date_format: "2006-01-02"
//	    timezone: "Europe/Moscow"
//	  order:
//	    choices: [asc, desc]
//	    choices_mapping: {asc: ASC, desc: DESC}
package specfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/isvinogradov/paramtools/paramerrors"
	"github.com/isvinogradov/paramtools/params"
)

// SpecSet is a named collection of parameter specs loaded from one document.
type SpecSet map[string]*params.ParameterSpec

// Get returns the spec for name, or nil when the set does not declare it.
func (s SpecSet) Get(name string) *params.ParameterSpec {
	return s[name]
}

// Names returns the declared parameter names in sorted order.
func (s SpecSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// document is the YAML file shape.
type document struct {
	Parameters map[string]*declaration `yaml:"parameters"`
}

// declaration mirrors the flag-based keyword surface of a parameter spec.
type declaration struct {
	IsString  bool `yaml:"is_string"`
	IsInt     bool `yaml:"is_int"`
	IsDecimal bool `yaml:"is_decimal"`
	IsDate    bool `yaml:"is_date"`
	IsBool    bool `yaml:"is_bool"`

	IsArray      bool `yaml:"is_array"`
	Required     bool `yaml:"required"`
	IgnoreErrors bool `yaml:"ignore_errors"`
	Default      any  `yaml:"default"`

	MinValue  *int64 `yaml:"min_value"`
	MaxValue  *int64 `yaml:"max_value"`
	MinLength *int   `yaml:"min_length"`
	MaxLength *int   `yaml:"max_length"`
	MinItems  *int   `yaml:"min_items"`
	MaxItems  *int   `yaml:"max_items"`

	Choices                []any       `yaml:"choices"`
	ChoicesMapping         map[any]any `yaml:"choices_mapping"`
	CaseInsensitiveChoices bool        `yaml:"choices_are_case_insensitive"`

	DateFormat string `yaml:"date_format"`
	Timezone   string `yaml:"timezone"`
}

// Load reads and parses a spec set from a YAML file.
func Load(path string) (SpecSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("specfile: reading %s: %w", path, err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("specfile: %s: %w", path, err)
	}
	return set, nil
}

// Parse parses a spec set from YAML bytes. Unknown fields are rejected, as
// are conflicting kind flags, unknown timezones, and choices_mapping keys
// that are not members of choices. All declaration mistakes surface as
// *paramerrors.ConfigError.
func Parse(data []byte) (SpecSet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &paramerrors.ConfigError{Message: "empty spec document"}
		}
		return nil, &paramerrors.ConfigError{Message: "malformed spec document", Cause: err}
	}
	if len(doc.Parameters) == 0 {
		return nil, &paramerrors.ConfigError{Message: "spec document declares no parameters"}
	}

	set := make(SpecSet, len(doc.Parameters))
	for name, decl := range doc.Parameters {
		if decl == nil {
			decl = &declaration{}
		}
		spec, err := buildSpec(name, decl)
		if err != nil {
			return nil, err
		}
		set[name] = spec
	}
	return set, nil
}

// buildSpec translates one declaration into an immutable ParameterSpec and
// validates it eagerly so a bad declaration fails at load time, not on the
// first request that happens to mention it.
func buildSpec(name string, decl *declaration) (*params.ParameterSpec, error) {
	kind, err := params.KindFromFlags(decl.IsInt, decl.IsDecimal, decl.IsDate, decl.IsBool)
	if err != nil {
		var cfgErr *paramerrors.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, paramerrors.NewConfig(name, cfgErr.Message)
		}
		return nil, err
	}

	spec := &params.ParameterSpec{
		Kind:                   kind,
		IsArray:                decl.IsArray,
		Required:               decl.Required,
		IgnoreErrors:           decl.IgnoreErrors,
		Default:                decl.Default,
		MinValue:               decl.MinValue,
		MaxValue:               decl.MaxValue,
		MinLength:              decl.MinLength,
		MaxLength:              decl.MaxLength,
		MinItems:               decl.MinItems,
		MaxItems:               decl.MaxItems,
		Choices:                decl.Choices,
		CaseInsensitiveChoices: decl.CaseInsensitiveChoices,
		DateFormat:             decl.DateFormat,
	}

	for k, v := range decl.ChoicesMapping {
		spec.ChoicesMapping = append(spec.ChoicesMapping, params.ChoiceMapping{Key: k, Value: v})
	}

	if decl.Timezone != "" {
		loc, err := time.LoadLocation(decl.Timezone)
		if err != nil {
			return nil, &paramerrors.ConfigError{
				Parameter: name,
				Message:   fmt.Sprintf("unknown timezone %q", decl.Timezone),
				Cause:     err,
			}
		}
		spec.Location = loc
	}

	if err := spec.Check(name); err != nil {
		return nil, err
	}
	return spec, nil
}
