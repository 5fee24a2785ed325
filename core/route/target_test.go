package route_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mvc/core/binder"
	"github.com/dmitrymomot/mvc/core/route"
	"github.com/dmitrymomot/mvc/core/web"
)

type pageController struct{}

func (pageController) Index(res *web.Response) error {
	return res.Text("index")
}

func (pageController) Ping() {}

func (pageController) draft(res *web.Response) error {
	return res.Text("draft")
}

type greeter struct{}

func (greeter) Handle(_ *web.Request, res *web.Response) error {
	return res.Text("hello")
}

func invoke(t *testing.T, target route.Target) (*httptest.ResponseRecorder, error) {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	err := target.Invoke(web.NewRequest(r, "/"), web.NewResponse(w, r, nil))
	return w, err
}

func TestTargetOf(t *testing.T) {
	t.Parallel()

	t.Run("handler", func(t *testing.T) {
		t.Parallel()
		target, err := route.TargetOf(greeter{})
		require.NoError(t, err)
		assert.IsType(t, route.Callback{}, target)

		w, err := invoke(t, target)
		require.NoError(t, err)
		assert.Equal(t, "hello", w.Body.String())
	})

	t.Run("handler func", func(t *testing.T) {
		t.Parallel()
		target, err := route.TargetOf(func(_ *web.Request, res *web.Response) error {
			return res.Text("fn")
		})
		require.NoError(t, err)
		assert.IsType(t, route.Callback{}, target)

		w, err := invoke(t, target)
		require.NoError(t, err)
		assert.Equal(t, "fn", w.Body.String())
	})

	t.Run("handler func without error", func(t *testing.T) {
		t.Parallel()
		target, err := route.TargetOf(func(_ *web.Request, res *web.Response) {
			_ = res.Text("void")
		})
		require.NoError(t, err)

		w, err := invoke(t, target)
		require.NoError(t, err)
		assert.Equal(t, "void", w.Body.String())
	})

	t.Run("arbitrary function is bound", func(t *testing.T) {
		t.Parallel()
		target, err := route.TargetOf(pageController{}.Index)
		require.NoError(t, err)
		assert.IsType(t, route.BoundMethod{}, target)

		w, err := invoke(t, target)
		require.NoError(t, err)
		assert.Equal(t, "index", w.Body.String())
	})

	t.Run("target passes through", func(t *testing.T) {
		t.Parallel()
		in := route.Handle(greeter{})
		out, err := route.TargetOf(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		_, err := route.TargetOf(nil)
		assert.ErrorIs(t, err, route.ErrNilTarget)

		var fn func(*web.Request, *web.Response) error
		_, err = route.TargetOf(fn)
		assert.ErrorIs(t, err, route.ErrNilTarget)
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()
		_, err := route.TargetOf(42)
		assert.ErrorIs(t, err, route.ErrUnsupportedHandler)
		assert.ErrorIs(t, err, binder.ErrNotFunc)
	})
}

func TestMethodTarget(t *testing.T) {
	t.Parallel()

	t.Run("with parameters", func(t *testing.T) {
		t.Parallel()
		ctrl := pageController{}
		target, err := route.Method(ctrl, "Index")
		require.NoError(t, err)

		bm, ok := target.(route.BoundMethod)
		require.True(t, ok)
		assert.Equal(t, ctrl, bm.Receiver())
		assert.Equal(t, 1, bm.NumIn())
		assert.Contains(t, target.String(), "Index")

		w, err := invoke(t, target)
		require.NoError(t, err)
		assert.Equal(t, "index", w.Body.String())
	})

	t.Run("without parameters", func(t *testing.T) {
		t.Parallel()
		target, err := route.Method(pageController{}, "Ping")
		require.NoError(t, err)
		assert.Equal(t, 0, target.(route.BoundMethod).NumIn())

		w, err := invoke(t, target)
		require.NoError(t, err)
		assert.False(t, w.Flushed)
		assert.Empty(t, w.Body.String())
	})

	t.Run("unexported through method value", func(t *testing.T) {
		t.Parallel()
		target, err := route.Func(pageController{}.draft)
		require.NoError(t, err)

		w, err := invoke(t, target)
		require.NoError(t, err)
		assert.Equal(t, "draft", w.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		_, err := route.Method(pageController{}, "draft")
		assert.ErrorIs(t, err, binder.ErrMethodNotFound)
	})
}

func TestCallbackPropagatesError(t *testing.T) {
	t.Parallel()

	want := errors.New("denied")
	target := route.HandleFunc(func(*web.Request, *web.Response) error { return want })
	_, err := invoke(t, target)
	assert.ErrorIs(t, err, want)
}
