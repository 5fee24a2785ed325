package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrymomot/mvc/core/web"
)

// Chain tries each renderer in order and uses the first one that knows the
// view. Any error other than ErrViewNotFound stops the chain.
type Chain []web.Renderer

// Render implements web.Renderer.
func (c Chain) Render(ctx context.Context, w io.Writer, view web.View) error {
	var buf bytes.Buffer
	for _, r := range c {
		if r == nil {
			continue
		}
		buf.Reset()
		err := r.Render(ctx, &buf, view)
		if errors.Is(err, ErrViewNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		_, err = w.Write(buf.Bytes())
		return err
	}
	return fmt.Errorf("%w: %q", ErrViewNotFound, view.Name)
}
