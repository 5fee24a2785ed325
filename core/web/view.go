package web

import (
	"context"
	"io"
)

// View pairs a view name with the model passed to the renderer.
type View struct {
	Name string
	Data map[string]any
}

// NewView returns a view with an empty model.
func NewView(name string) View {
	return View{Name: name, Data: make(map[string]any)}
}

// With adds a model value in place and returns the view for chaining.
func (v View) With(key string, val any) View {
	if v.Data == nil {
		v.Data = make(map[string]any)
	}
	v.Data[key] = val
	return v
}

// Renderer turns a view into bytes. Implementations live in core/render.
type Renderer interface {
	Render(ctx context.Context, w io.Writer, view View) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, w io.Writer, view View) error

// Render implements Renderer.
func (f RendererFunc) Render(ctx context.Context, w io.Writer, view View) error {
	return f(ctx, w, view)
}
