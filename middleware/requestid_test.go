package middleware_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mvc/core/route"
	"github.com/dmitrymomot/mvc/core/web"
	"github.com/dmitrymomot/mvc/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid", func(t *testing.T) {
		t.Parallel()

		req, res, w := newPair(http.MethodGet, "/")
		require.NoError(t, middleware.RequestID()(req, res))

		id, ok := middleware.GetRequestID(req)
		require.True(t, ok)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Header().Get("X-Request-ID"))

		fromCtx, ok := middleware.RequestIDFromContext(req.Context())
		require.True(t, ok)
		assert.Equal(t, id, fromCtx)
	})

	t.Run("uses existing header", func(t *testing.T) {
		t.Parallel()

		mw := middleware.RequestIDWithConfig(middleware.RequestIDConfig{UseExisting: true})
		req, res, w := newPair(http.MethodGet, "/")
		req.Raw().Header.Set("X-Request-ID", "abc-123")
		require.NoError(t, mw(req, res))

		id, _ := middleware.GetRequestID(req)
		assert.Equal(t, "abc-123", id)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("ignores existing header by default", func(t *testing.T) {
		t.Parallel()

		req, res, _ := newPair(http.MethodGet, "/")
		req.Raw().Header.Set("X-Request-ID", "abc-123")
		require.NoError(t, middleware.RequestID()(req, res))

		id, _ := middleware.GetRequestID(req)
		assert.NotEqual(t, "abc-123", id)
	})

	t.Run("custom generator and header", func(t *testing.T) {
		t.Parallel()

		mw := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator:  func() string { return "fixed" },
			HeaderName: "X-Trace-ID",
		})
		req, res, w := newPair(http.MethodGet, "/")
		require.NoError(t, mw(req, res))

		assert.Equal(t, "fixed", w.Header().Get("X-Trace-ID"))
		assert.Empty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("skip", func(t *testing.T) {
		t.Parallel()

		mw := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Skip: func(req *web.Request) bool { return req.Path() == "/health" },
		})
		req, res, w := newPair(http.MethodGet, "/health")
		require.NoError(t, mw(req, res))

		_, ok := middleware.GetRequestID(req)
		assert.False(t, ok)
		assert.Empty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("second run keeps first id", func(t *testing.T) {
		t.Parallel()

		n := 0
		mw := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: func() string { n++; return "id" },
		})
		req, res, _ := newPair(http.MethodGet, "/")
		require.NoError(t, mw(req, res))
		require.NoError(t, mw(req, res))
		assert.Equal(t, 1, n)
	})
}

func TestRequestIDThroughDispatcher(t *testing.T) {
	t.Parallel()

	tbl := route.NewTable()
	mustRegister(t)(tbl.Before("/**", middleware.RequestID()))

	var seen string
	mustRegister(t)(tbl.Get("/users/:id", func(req *web.Request, res *web.Response) error {
		seen, _ = middleware.GetRequestID(req)
		return res.Text("ok")
	}))

	do := serve(t, tbl)
	w := do(http.MethodGet, "/users/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get("X-Request-ID"))

	// Headers are absent when nothing matched.
	w = do(http.MethodGet, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("X-Request-ID"))
}
