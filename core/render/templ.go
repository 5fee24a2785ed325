package render

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/mvc/core/web"
)

// ComponentFunc builds a templ component from a view model.
type ComponentFunc func(data map[string]any) templ.Component

// Templ renders views with registered templ components.
type Templ struct {
	mu         sync.RWMutex
	components map[string]ComponentFunc
}

// NewTempl returns an empty component registry.
func NewTempl() *Templ {
	return &Templ{components: make(map[string]ComponentFunc)}
}

// Register binds a view name to a component constructor.
func (t *Templ) Register(name string, fn ComponentFunc) *Templ {
	t.mu.Lock()
	t.components[name] = fn
	t.mu.Unlock()
	return t
}

// Has reports whether a component is registered for the view name.
func (t *Templ) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.components[name]
	return ok
}

// Render builds the component for view and renders it with ctx, so
// components can read request scoped values.
func (t *Templ) Render(ctx context.Context, w io.Writer, view web.View) error {
	t.mu.RLock()
	fn, ok := t.components[view.Name]
	t.mu.RUnlock()
	if !ok || fn == nil {
		return fmt.Errorf("%w: %q", ErrViewNotFound, view.Name)
	}

	component := fn(view.Data)
	if component == nil {
		return fmt.Errorf("%w: %q built a nil component", ErrViewNotFound, view.Name)
	}
	if err := component.Render(ctx, w); err != nil {
		return fmt.Errorf("templ component render error: %w", err)
	}
	return nil
}
