package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mvc/core/dispatcher"
	"github.com/dmitrymomot/mvc/core/route"
	"github.com/dmitrymomot/mvc/core/web"
)

func newPair(method, target string) (*web.Request, *web.Response, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	return web.NewRequest(r, ""), web.NewResponse(w, r, nil), w
}

func newJSONLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func serve(t *testing.T, tbl *route.Table, opts ...dispatcher.Option) func(method, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	d := dispatcher.New(tbl, opts...)
	return func(method, target string, header http.Header) *httptest.ResponseRecorder {
		r := httptest.NewRequest(method, target, nil)
		for k, v := range header {
			r.Header[k] = v
		}
		w := httptest.NewRecorder()
		d.ServeHTTP(w, r)
		return w
	}
}

// mustRegister returns a checker for table registration results, so calls
// read mustRegister(t)(tbl.Get(...)).
func mustRegister(t *testing.T) func(*route.Route, error) {
	t.Helper()
	return func(_ *route.Route, err error) {
		t.Helper()
		require.NoError(t, err)
	}
}
