package web

import "context"

// Transport describes the deployment a dispatcher serves requests for.
type Transport struct {
	// ContextPath is the deployment root stripped from request URIs.
	ContextPath string
	// Debug enables verbose per-request logging.
	Debug bool
}

// Context is the per-request slot exposing the transport, request and
// response to code deep in the call stack without parameter threading.
// It is stored in the request's context.Context, so each serving goroutine
// sees only its own slot.
type Context struct {
	Transport Transport
	Request   *Request
	Response  *Response
}

type contextKey struct{}

// Bind stores a fresh slot for (t, req, res) in the request and response
// contexts and in req.Raw(), and returns the resulting context. The
// dispatcher calls it before every handler and interceptor invocation.
func Bind(t Transport, req *Request, res *Response) context.Context {
	c := &Context{Transport: t, Request: req, Response: res}
	ctx := context.WithValue(req.raw.Context(), contextKey{}, c)
	req.ctx = ctx
	req.raw = req.raw.WithContext(ctx)
	if res != nil {
		res.ctx = ctx
	}
	return ctx
}

// FromContext returns the slot bound to ctx.
func FromContext(ctx context.Context) (*Context, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(contextKey{}).(*Context)
	return c, ok
}

// Current returns the slot bound to ctx or nil.
func Current(ctx context.Context) *Context {
	c, _ := FromContext(ctx)
	return c
}
