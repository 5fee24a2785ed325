package web

import (
	"bytes"
	"context"
	"io"
	"maps"
	"net/http"
)

// Request wraps the inbound *http.Request for one dispatch. It owns the
// path parameters of the route being invoked and request-scoped attributes.
// A Request is not safe for concurrent use.
type Request struct {
	raw      *http.Request
	ctx      context.Context
	path     string
	params   map[string]string
	attrs    map[string]any
	body     []byte
	bodyRead bool
}

// NewRequest wraps r. path is the routing path relative to the deployment
// root; an empty path falls back to r.URL.Path.
func NewRequest(r *http.Request, path string) *Request {
	if path == "" {
		path = r.URL.Path
	}
	return &Request{
		raw:    r,
		ctx:    r.Context(),
		path:   path,
		params: make(map[string]string),
	}
}

// Raw returns the underlying *http.Request.
func (r *Request) Raw() *http.Request {
	return r.raw
}

// Context returns the request context, including the per-request slot.
func (r *Request) Context() context.Context {
	return r.ctx
}

// SetValue stores a value in the request context. It survives slot re-binding.
func (r *Request) SetValue(key, val any) {
	r.ctx = context.WithValue(r.ctx, key, val)
	r.raw = r.raw.WithContext(r.ctx)
}

// Method returns the HTTP method.
func (r *Request) Method() string {
	return r.raw.Method
}

// Path returns the routing path relative to the deployment root.
func (r *Request) Path() string {
	return r.path
}

// URI returns the raw request URI including the query string.
func (r *Request) URI() string {
	return r.raw.URL.RequestURI()
}

// Host returns the host the request was sent to.
func (r *Request) Host() string {
	return r.raw.Host
}

// Header returns the first value of the named header.
func (r *Request) Header(name string) string {
	return r.raw.Header.Get(name)
}

// Headers returns all request headers.
func (r *Request) Headers() http.Header {
	return r.raw.Header
}

// Query returns the first value of the named query parameter.
func (r *Request) Query(name string) string {
	return r.raw.URL.Query().Get(name)
}

// Cookie returns the value of the named cookie.
func (r *Request) Cookie(name string) (string, bool) {
	c, err := r.raw.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

// Body reads and caches the request body. Later calls return the cached bytes
// and the raw request body is replaced so it can be read again.
func (r *Request) Body() ([]byte, error) {
	if r.bodyRead {
		return r.body, nil
	}
	r.bodyRead = true
	if r.raw.Body == nil || r.raw.Body == http.NoBody {
		return nil, nil
	}

	b, err := io.ReadAll(r.raw.Body)
	_ = r.raw.Body.Close()
	if err != nil {
		return nil, err
	}
	r.body = b
	r.raw.Body = io.NopCloser(bytes.NewReader(b))
	return b, nil
}

// Param returns the named path parameter of the route being invoked.
func (r *Request) Param(name string) string {
	return r.params[name]
}

// Params returns a copy of the current path parameters.
func (r *Request) Params() map[string]string {
	return maps.Clone(r.params)
}

// InitPathParams replaces the path parameters with those p extracts from the
// request path. A pattern that does not match leaves no parameters.
func (r *Request) InitPathParams(p Pattern) {
	params, ok := p.Extract(r.path)
	if !ok {
		clear(r.params)
		return
	}
	r.params = params
}

// Set stores a request-scoped attribute.
func (r *Request) Set(key string, val any) {
	if r.attrs == nil {
		r.attrs = make(map[string]any)
	}
	r.attrs[key] = val
}

// Get returns a request-scoped attribute.
func (r *Request) Get(key string) (any, bool) {
	v, ok := r.attrs[key]
	return v, ok
}
