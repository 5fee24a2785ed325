package render_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mvc/core/render"
	"github.com/dmitrymomot/mvc/core/web"
)

type ctxKey struct{}

func greeting(data map[string]any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<p>%v from %v</p>", data["name"], ctx.Value(ctxKey{}))
		return err
	})
}

func TestTempl(t *testing.T) {
	t.Parallel()

	r := render.NewTempl().Register("greeting", greeting)
	assert.True(t, r.Has("greeting"))
	assert.False(t, r.Has("other"))

	ctx := context.WithValue(context.Background(), ctxKey{}, "ctx")
	var buf bytes.Buffer
	require.NoError(t, r.Render(ctx, &buf, web.NewView("greeting").With("name", "ann")))
	assert.Equal(t, "<p>ann from ctx</p>", buf.String())
}

func TestTemplErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := render.NewTempl().
		Register("failing", func(map[string]any) templ.Component {
			return templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })
		}).
		Register("nil", func(map[string]any) templ.Component { return nil })

	var buf bytes.Buffer
	assert.ErrorIs(t, r.Render(context.Background(), &buf, web.NewView("missing")), render.ErrViewNotFound)
	assert.ErrorIs(t, r.Render(context.Background(), &buf, web.NewView("nil")), render.ErrViewNotFound)
	assert.ErrorIs(t, r.Render(context.Background(), &buf, web.NewView("failing")), boom)
}

func TestChain(t *testing.T) {
	t.Parallel()

	first := render.NewTempl().Register("a", greeting)
	boom := errors.New("boom")
	failing := web.RendererFunc(func(_ context.Context, w io.Writer, view web.View) error {
		if view.Name == "b" {
			_, _ = w.Write([]byte("partial"))
			return boom
		}
		return render.ErrViewNotFound
	})
	last := web.RendererFunc(func(_ context.Context, w io.Writer, view web.View) error {
		_, err := w.Write([]byte("last:" + view.Name))
		return err
	})

	chain := render.Chain{nil, first, failing, last}

	var buf bytes.Buffer
	require.NoError(t, chain.Render(context.Background(), &buf, web.NewView("c")))
	assert.Equal(t, "last:c", buf.String())

	buf.Reset()
	assert.ErrorIs(t, chain.Render(context.Background(), &buf, web.NewView("b")), boom)
	assert.Empty(t, buf.String())

	buf.Reset()
	err := render.Chain{first}.Render(context.Background(), &buf, web.NewView("zzz"))
	assert.ErrorIs(t, err, render.ErrViewNotFound)
}
