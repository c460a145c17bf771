// Package binding connects the params engine to HTTP requests.
//
// It owns everything the engine deliberately does not: extracting raw
// values from the query string or the matched route, the ignore-errors
// policy, and translating failures into HTTP responses. Path parameters are
// read from gorilla/mux route variables.
//
// # Handler Usage
//
//	func list(w http.ResponseWriter, r *http.Request) {
//		page, err := binding.QueryParameter(r, "page", pageSpec)
//		if err != nil {
//			binding.WriteError(w, err)
//			return
//		}
//		// page is int64 (or pageSpec.Default when absent)
//	}
//
// # Middleware Usage
//
//	specs, _ := specfile.Load("params.yaml")
//	router.Use(binding.Require(specs))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		values, _ := binding.Validated(r)
//		page := values["page"].(int64)
//	}
package binding

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/isvinogradov/paramtools/paramerrors"
	"github.com/isvinogradov/paramtools/params"
)

// QueryParameter reads the named parameter from the request's query string
// and validates it against spec. A missing key is absent; an empty value
// (?q= or ?q) is a present empty string. For array specs every occurrence
// of the key is collected in order.
func QueryParameter(r *http.Request, name string, spec *params.ParameterSpec) (any, error) {
	query := r.URL.Query()

	raw := params.AbsentInput()
	if spec != nil && spec.IsArray {
		if values, ok := query[name]; ok {
			raw = params.ArrayInput(values)
		}
	} else if query.Has(name) {
		raw = params.SingleInput(query.Get(name))
	}

	return resolve(name, raw, spec)
}

// PathParameter reads the named parameter from the request's gorilla/mux
// route variables and validates it against spec. A variable the route did
// not capture is absent.
func PathParameter(r *http.Request, name string, spec *params.ParameterSpec) (any, error) {
	value, ok := mux.Vars(r)[name]

	raw := params.AbsentInput()
	if ok {
		raw = params.SingleInput(value)
	}

	return resolve(name, raw, spec)
}

// resolve runs the engine and applies the spec's ignore-errors policy: the
// validation failure is always fully computed first, and only then
// discarded in favor of the default. Configuration errors are never
// discarded.
func resolve(name string, raw params.RawInput, spec *params.ParameterSpec) (any, error) {
	v, err := params.Validate(name, raw, spec)
	if err != nil && spec != nil && spec.IgnoreErrors && errors.Is(err, paramerrors.ErrValidation) {
		return spec.Default, nil
	}
	return v, err
}

// WriteError translates a validation or configuration failure into an HTTP
// response: validation failures become a 400 with the failure message as
// the body, anything else becomes an opaque 500 (a configuration error is
// a server-side bug, not something to show clients).
func WriteError(w http.ResponseWriter, err error) {
	var verr *paramerrors.ValidationError
	if errors.As(err, &verr) {
		http.Error(w, verr.Message, http.StatusBadRequest)
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// ctxKey is the context key type for validated parameter values.
type ctxKey struct{}

// Validated returns the parameter values stashed by the Require middleware.
// The second return is false when the request did not pass through Require.
func Validated(r *http.Request) (map[string]any, bool) {
	values, ok := r.Context().Value(ctxKey{}).(map[string]any)
	return values, ok
}

// Require returns middleware that validates every spec in specs against the
// request's query string up front. On success the typed values are stashed
// in the request context for Validated; on failure the request is rejected
// without reaching the handler.
func Require(specs map[string]*params.ParameterSpec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			values := make(map[string]any, len(specs))
			for name, spec := range specs {
				v, err := QueryParameter(r, name, spec)
				if err != nil {
					WriteError(w, err)
					return
				}
				values[name] = v
			}
			ctx := context.WithValue(r.Context(), ctxKey{}, values)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
