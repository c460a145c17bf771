// Package paramtools provides declarative validation and type coercion for
// request parameters.
//
// paramtools is the Go successor to aiohttp-parameter-parser: given a raw,
// untyped input (a missing value, a single string, or an ordered sequence of
// strings) and an immutable ParameterSpec describing the expected kind and
// constraints, it returns either a strongly typed value or a precise,
// client-presentable validation failure.
//
// # Overview
//
// The library consists of four packages:
//
//   - params: the coercion and validation engine (kinds, specs, Validate)
//   - paramerrors: structured error types distinguishing caller programming
//     errors (ConfigError) from data-dependent rejections (ValidationError)
//   - specfile: YAML-declared parameter spec sets for dynamic declaration
//     sources
//   - binding: HTTP query-string and path-parameter binding on top of the
//     engine, including middleware helpers
//
// # Quick Start
//
// Validate a query parameter value against a spec:
//
//	import "github.com/isvinogradov/paramtools/params"
//
//	spec := &params.ParameterSpec{
//		Kind:     params.KindInt,
//		Required: true,
//		MinValue: params.Int64(1),
//	}
//	v, err := params.Validate("page", params.SingleInput("3"), spec)
//	if err != nil {
//		// *paramerrors.ValidationError for bad input,
//		// *paramerrors.ConfigError for a bad spec
//	}
//	page := v.(int64) // 3
//
// Bind directly from an HTTP request:
//
//	import "github.com/isvinogradov/paramtools/binding"
//
//	page, err := binding.QueryParameter(r, "page", spec)
//
// Declare specs in YAML and validate from the command line:
//
//	paramtools check -specs params.yaml -name page -value 3
//
// # Error Handling
//
// All failures are structured errors supporting errors.Is and errors.As:
//
//	if errors.Is(err, paramerrors.ErrValidation) {
//		http.Error(w, err.Error(), http.StatusBadRequest)
//	}
//
// ConfigError indicates a mistake in the parameter declaration itself and
// should fail loudly at startup or first use; it is never produced by
// request data.
package paramtools
