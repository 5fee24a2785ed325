package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mvc/core/route"
	"github.com/dmitrymomot/mvc/core/web"
	"github.com/dmitrymomot/mvc/middleware"
)

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	req, res, w := newPair(http.MethodGet, "/")
	require.NoError(t, middleware.SecurityHeaders()(req, res))

	h := w.Header()
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", h.Get("X-Frame-Options"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", h.Get("Strict-Transport-Security"))
	assert.Equal(t, "strict-origin-when-cross-origin", h.Get("Referrer-Policy"))
}

func TestSecurityHeadersPresets(t *testing.T) {
	t.Parallel()

	req, res, w := newPair(http.MethodGet, "/")
	require.NoError(t, middleware.SecurityHeadersStrict()(req, res))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "require-corp", w.Header().Get("Cross-Origin-Embedder-Policy"))

	req, res, w = newPair(http.MethodGet, "/")
	require.NoError(t, middleware.SecurityHeadersRelaxed()(req, res))
	assert.Empty(t, w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestSecurityHeadersConfig(t *testing.T) {
	t.Parallel()

	cfg := middleware.BalancedSecurity
	cfg.IsDevelopment = true
	cfg.CustomHeaders = map[string]string{"X-App": "mvc"}
	cfg.Skip = func(req *web.Request) bool { return req.Path() == "/embed" }
	mw := middleware.SecurityHeadersWithConfig(cfg)

	req, res, w := newPair(http.MethodGet, "/")
	require.NoError(t, mw(req, res))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	assert.Equal(t, "mvc", w.Header().Get("X-App"))

	req, res, w = newPair(http.MethodGet, "/embed")
	require.NoError(t, mw(req, res))
	assert.Empty(t, w.Header().Get("X-App"))
}

func TestSecurityHeadersHandlerOverride(t *testing.T) {
	t.Parallel()

	tbl := route.NewTable()
	mustRegister(t)(tbl.Before("/**", middleware.SecurityHeaders()))
	mustRegister(t)(tbl.Get("/frame/:id", func(req *web.Request, res *web.Response) error {
		res.Header().Set("X-Frame-Options", "DENY")
		return res.Text(req.Param("id"))
	}))

	w := serve(t, tbl)(http.MethodGet, "/frame/9", nil)
	assert.Equal(t, "9", w.Body.String())
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
