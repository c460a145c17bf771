package binding

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isvinogradov/paramtools/paramerrors"
	"github.com/isvinogradov/paramtools/params"
)

func TestQueryParameter(t *testing.T) {
	t.Run("single value", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/items?page=3", nil)
		spec := &params.ParameterSpec{Kind: params.KindInt, Required: true}

		v, err := QueryParameter(r, "page", spec)

		require.NoError(t, err)
		assert.Equal(t, int64(3), v)
	})

	t.Run("missing key is absent", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/items", nil)
		spec := &params.ParameterSpec{Kind: params.KindInt, Default: int64(1)}

		v, err := QueryParameter(r, "page", spec)

		require.NoError(t, err)
		assert.Equal(t, int64(1), v)
	})

	t.Run("empty value is present", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/items?q=", nil)
		spec := &params.ParameterSpec{Kind: params.KindString, MinLength: params.Int(1)}

		_, err := QueryParameter(r, "q", spec)

		require.Error(t, err)
		assert.True(t, errors.Is(err, paramerrors.ErrValidation))
	})

	t.Run("array collects repeated keys in order", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/items?id=3&id=1&id=2", nil)
		spec := &params.ParameterSpec{Kind: params.KindInt, IsArray: true}

		v, err := QueryParameter(r, "id", spec)

		require.NoError(t, err)
		assert.Equal(t, []any{int64(3), int64(1), int64(2)}, v)
	})

	t.Run("array missing key is absent, not empty", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/items", nil)
		spec := &params.ParameterSpec{
			Kind:     params.KindInt,
			IsArray:  true,
			MinItems: params.Int(1),
			Default:  []any{},
		}

		v, err := QueryParameter(r, "id", spec)

		require.NoError(t, err)
		assert.Equal(t, []any{}, v)
	})

	t.Run("required and missing", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/items", nil)
		spec := &params.ParameterSpec{Kind: params.KindInt, Required: true}

		_, err := QueryParameter(r, "page", spec)

		require.Error(t, err)
		assert.EqualError(t, err, "<page> is a required parameter")
	})

	t.Run("ignore_errors discards the failure and returns the default", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/items?page=abc", nil)
		spec := &params.ParameterSpec{
			Kind:         params.KindInt,
			IgnoreErrors: true,
			Default:      int64(1),
		}

		v, err := QueryParameter(r, "page", spec)

		require.NoError(t, err)
		assert.Equal(t, int64(1), v)
	})

	t.Run("ignore_errors never hides config errors", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/items?page=1", nil)
		spec := &params.ParameterSpec{
			Kind:         params.Kind(42),
			IgnoreErrors: true,
			Default:      int64(1),
		}

		_, err := QueryParameter(r, "page", spec)

		require.Error(t, err)
		assert.True(t, errors.Is(err, paramerrors.ErrConfig))
	})
}

func TestPathParameter(t *testing.T) {
	// Runs the request through a mux router so route variables are
	// populated the way production handlers see them.
	callThroughRouter := func(t *testing.T, path, url string, name string, spec *params.ParameterSpec) (any, error) {
		t.Helper()
		var gotValue any
		var gotErr error
		router := mux.NewRouter()
		router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			gotValue, gotErr = PathParameter(r, name, spec)
		})
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, url, nil))
		return gotValue, gotErr
	}

	t.Run("captured variable", func(t *testing.T) {
		spec := &params.ParameterSpec{Kind: params.KindInt, Required: true, MinValue: params.Int64(1)}

		v, err := callThroughRouter(t, "/users/{id}", "/users/42", "id", spec)

		require.NoError(t, err)
		assert.Equal(t, int64(42), v)
	})

	t.Run("uncaptured name is absent", func(t *testing.T) {
		spec := &params.ParameterSpec{Kind: params.KindString, Default: "anonymous"}

		v, err := callThroughRouter(t, "/users/{id}", "/users/42", "nickname", spec)

		require.NoError(t, err)
		assert.Equal(t, "anonymous", v)
	})

	t.Run("invalid value", func(t *testing.T) {
		spec := &params.ParameterSpec{Kind: params.KindInt, Required: true}

		_, err := callThroughRouter(t, "/users/{id}", "/users/forty-two", "id", spec)

		require.Error(t, err)
		assert.EqualError(t, err, "Invalid <id> type (int is expected)")
	})

	t.Run("choices with mapping", func(t *testing.T) {
		spec := &params.ParameterSpec{
			Choices:        []any{"asc", "desc"},
			ChoicesMapping: []params.ChoiceMapping{{Key: "asc", Value: 1}, {Key: "desc", Value: -1}},
		}

		v, err := callThroughRouter(t, "/sorted/{order}", "/sorted/desc", "order", spec)

		require.NoError(t, err)
		assert.Equal(t, -1, v)
	})
}

func TestWriteError(t *testing.T) {
	t.Run("validation failure becomes 400 with the message", func(t *testing.T) {
		rec := httptest.NewRecorder()

		WriteError(rec, paramerrors.NewValidation("page", "type", "Invalid <page> type (int is expected)"))

		resp := rec.Result()
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid <page> type (int is expected)\n", string(body))
	})

	t.Run("config failure becomes opaque 500", func(t *testing.T) {
		rec := httptest.NewRecorder()

		WriteError(rec, paramerrors.NewConfig("page", "conflicting kind flags"))

		resp := rec.Result()
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.NotContains(t, string(body), "conflicting", "config details must not leak to clients")
	})
}

func TestRequire(t *testing.T) {
	specs := map[string]*params.ParameterSpec{
		"page":  {Kind: params.KindInt, Required: true, MinValue: params.Int64(1)},
		"order": {Choices: []any{"asc", "desc"}, Default: "asc"},
	}

	var seen map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = Validated(r)
		w.WriteHeader(http.StatusNoContent)
	})

	router := mux.NewRouter()
	router.Handle("/items", Require(specs)(handler))

	t.Run("valid request reaches the handler with typed values", func(t *testing.T) {
		seen = nil
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items?page=2", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, int64(2), seen["page"])
		assert.Equal(t, "asc", seen["order"], "absent optional falls back to default")
	})

	t.Run("invalid request is rejected before the handler", func(t *testing.T) {
		seen = nil
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items?page=0", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Minimum value for <page> is 1")
		assert.Nil(t, seen)
	})

	t.Run("Validated without middleware", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/items", nil)
		_, ok := Validated(r)
		assert.False(t, ok)
	})
}
