package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mvc/core/web"
)

func TestRequestAccessors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/app/users/42?tab=posts", strings.NewReader("payload"))
	r.Header.Set("X-Trace", "abc")
	r.AddCookie(&http.Cookie{Name: "session", Value: "s1"})

	req := web.NewRequest(r, "/users/42")

	assert.Same(t, r, req.Raw())
	assert.Equal(t, http.MethodPost, req.Method())
	assert.Equal(t, "/users/42", req.Path())
	assert.Equal(t, "/app/users/42?tab=posts", req.URI())
	assert.Equal(t, "posts", req.Query("tab"))
	assert.Equal(t, "abc", req.Header("X-Trace"))
	assert.Equal(t, "abc", req.Headers().Get("X-Trace"))

	session, ok := req.Cookie("session")
	assert.True(t, ok)
	assert.Equal(t, "s1", session)
	_, ok = req.Cookie("missing")
	assert.False(t, ok)
}

func TestRequestPathFallsBackToURL(t *testing.T) {
	t.Parallel()

	req := web.NewRequest(httptest.NewRequest(http.MethodGet, "/plain", nil), "")
	assert.Equal(t, "/plain", req.Path())
}

func TestRequestBodyIsCached(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hello"))
	req := web.NewRequest(r, "")

	first, err := req.Body()
	require.NoError(t, err)
	second, err := req.Body()
	require.NoError(t, err)

	assert.Equal(t, "hello", string(first))
	assert.Equal(t, first, second)

	// The raw body can still be consumed by code that bypasses the wrapper.
	raw, err := io.ReadAll(req.Raw().Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))
}

func TestRequestEmptyBody(t *testing.T) {
	t.Parallel()

	req := web.NewRequest(httptest.NewRequest(http.MethodGet, "/", nil), "")
	b, err := req.Body()
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestRequestInitPathParams(t *testing.T) {
	t.Parallel()

	req := web.NewRequest(httptest.NewRequest(http.MethodGet, "/users/42", nil), "")

	req.InitPathParams(web.MustParsePattern("/users/:id"))
	assert.Equal(t, "42", req.Param("id"))
	assert.Equal(t, map[string]string{"id": "42"}, req.Params())

	// A pattern that does not match clears the previous bindings.
	req.InitPathParams(web.MustParsePattern("/posts/:slug"))
	assert.Empty(t, req.Param("id"))
	assert.Empty(t, req.Params())
}

func TestRequestParamsReturnsCopy(t *testing.T) {
	t.Parallel()

	req := web.NewRequest(httptest.NewRequest(http.MethodGet, "/users/42", nil), "")
	req.InitPathParams(web.MustParsePattern("/users/:id"))

	params := req.Params()
	params["id"] = "changed"
	assert.Equal(t, "42", req.Param("id"))
}

func TestRequestAttributes(t *testing.T) {
	t.Parallel()

	req := web.NewRequest(httptest.NewRequest(http.MethodGet, "/", nil), "")

	_, ok := req.Get("user")
	assert.False(t, ok)

	req.Set("user", "alice")
	v, ok := req.Get("user")
	assert.True(t, ok)
	assert.Equal(t, "alice", v)
}

type ctxKey struct{}

func TestRequestSetValueSurvivesBind(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	req := web.NewRequest(r, "")
	res := web.NewResponse(httptest.NewRecorder(), r, nil)

	req.SetValue(ctxKey{}, "v1")
	assert.Equal(t, "v1", req.Context().Value(ctxKey{}))

	web.Bind(web.Transport{}, req, res)
	assert.Equal(t, "v1", req.Context().Value(ctxKey{}))
}
