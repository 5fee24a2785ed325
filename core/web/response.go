package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
)

// Content types written by Response helpers.
const (
	ContentTypeText    = "text/plain; charset=utf-8"
	ContentTypeHTML    = "text/html; charset=utf-8"
	ContentTypeJSON    = "application/json; charset=utf-8"
	ContentTypeMsgPack = "application/msgpack"
)

// Response wraps the outbound http.ResponseWriter for one dispatch together
// with the renderer used for views. The status set with Status is held back
// until the first body write commits the response.
type Response struct {
	w        *responseWriter
	raw      *http.Request
	ctx      context.Context
	renderer Renderer
	status   int
}

// NewResponse wraps w. renderer may be nil when no views are rendered.
func NewResponse(w http.ResponseWriter, r *http.Request, renderer Renderer) *Response {
	return &Response{
		w:        newResponseWriter(w),
		raw:      r,
		ctx:      r.Context(),
		renderer: renderer,
	}
}

// Writer returns the commit-tracking writer. Writes through it count as
// committing the response.
func (r *Response) Writer() http.ResponseWriter {
	return r.w
}

// Header returns the response header map.
func (r *Response) Header() http.Header {
	return r.w.Header()
}

// Renderer returns the configured renderer, possibly nil.
func (r *Response) Renderer() Renderer {
	return r.renderer
}

// Status sets the status code sent on commit. It is a no-op once committed.
func (r *Response) Status(code int) *Response {
	if !r.w.Written() {
		r.status = code
	}
	return r
}

// StatusCode returns the committed status, or the pending one, or 200.
func (r *Response) StatusCode() int {
	if r.w.Written() {
		return r.w.Status()
	}
	if r.status != 0 {
		return r.status
	}
	return http.StatusOK
}

// Committed reports whether headers have been sent.
func (r *Response) Committed() bool {
	return r.w.Written()
}

// Size returns the number of body bytes written.
func (r *Response) Size() int {
	return r.w.size
}

// Write commits the response with the pending status and writes b.
func (r *Response) Write(b []byte) (int, error) {
	r.commit("")
	return r.w.Write(b)
}

// Text writes a text/plain body.
func (r *Response) Text(s string) error {
	return r.write(ContentTypeText, []byte(s))
}

// HTML writes a text/html body.
func (r *Response) HTML(s string) error {
	return r.write(ContentTypeHTML, []byte(s))
}

// Bytes writes b with the given content type.
func (r *Response) Bytes(contentType string, b []byte) error {
	return r.write(contentType, b)
}

// JSON writes v encoded as JSON.
func (r *Response) JSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json response: %w", err)
	}
	return r.write(ContentTypeJSON, b)
}

// MsgPack writes v encoded as MessagePack.
func (r *Response) MsgPack(v any) error {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal msgpack response: %w", err)
	}
	return r.write(ContentTypeMsgPack, b)
}

// Render renders view through the configured renderer. Output is buffered so
// a failing template leaves the response uncommitted.
func (r *Response) Render(view View) error {
	if r.renderer == nil {
		return ErrNoRenderer
	}
	var buf bytes.Buffer
	if err := r.renderer.Render(r.ctx, &buf, view); err != nil {
		return fmt.Errorf("render view %q: %w", view.Name, err)
	}
	return r.write(ContentTypeHTML, buf.Bytes())
}

// Redirect sends a redirect to location. A pending 3xx status is kept,
// anything else becomes 302 Found.
func (r *Response) Redirect(location string) error {
	if r.w.Written() {
		return fmt.Errorf("redirect to %q: response already committed", location)
	}
	code := r.status
	if code < 300 || code > 399 {
		code = http.StatusFound
	}
	http.Redirect(r.w, r.raw, location, code)
	return nil
}

// NoContent commits the response with 204 and no body.
func (r *Response) NoContent() {
	r.w.WriteHeader(http.StatusNoContent)
}

func (r *Response) write(contentType string, b []byte) error {
	r.commit(contentType)
	if len(b) == 0 {
		return nil
	}
	_, err := r.w.Write(b)
	return err
}

func (r *Response) commit(contentType string) {
	if r.w.Written() {
		return
	}
	if contentType != "" {
		r.w.Header().Set("Content-Type", contentType)
	}
	r.w.WriteHeader(r.StatusCode())
}
