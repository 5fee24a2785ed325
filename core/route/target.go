package route

import (
	"fmt"

	"github.com/dmitrymomot/mvc/core/binder"
	"github.com/dmitrymomot/mvc/core/web"
)

// Handler handles a matched request.
type Handler interface {
	Handle(req *web.Request, res *web.Response) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(req *web.Request, res *web.Response) error

// Handle calls f(req, res).
func (f HandlerFunc) Handle(req *web.Request, res *web.Response) error {
	return f(req, res)
}

// Target is the executable part of a route. The set of implementations is
// closed: Callback and BoundMethod.
type Target interface {
	Invoke(req *web.Request, res *web.Response) error
	String() string
	target()
}

// Callback is a target backed by a Handler.
type Callback struct {
	h    Handler
	name string
}

// Handle wraps h into a Callback target.
func Handle(h Handler) Target {
	if h == nil {
		return nil
	}
	return Callback{h: h, name: fmt.Sprintf("%T", h)}
}

// HandleFunc wraps fn into a Callback target.
func HandleFunc(fn func(req *web.Request, res *web.Response) error) Target {
	if fn == nil {
		return nil
	}
	return Callback{h: HandlerFunc(fn), name: "func(*web.Request, *web.Response) error"}
}

// Invoke calls the wrapped handler directly.
func (c Callback) Invoke(req *web.Request, res *web.Response) error {
	return c.h.Handle(req, res)
}

func (c Callback) String() string { return c.name }

func (Callback) target() {}

// BoundMethod is a target backed by a function or a receiver method whose
// arguments are filled by the binder.
type BoundMethod struct {
	recv any
	fn   *binder.Func
}

// Method resolves the exported method name on recv.
func Method(recv any, name string) (Target, error) {
	fn, err := binder.Method(recv, name)
	if err != nil {
		return nil, err
	}
	return BoundMethod{recv: recv, fn: fn}, nil
}

// Func wraps any non-variadic function, including method values such as
// ctrl.show, into a BoundMethod target.
func Func(fn any) (Target, error) {
	f, err := binder.Compile(fn)
	if err != nil {
		return nil, err
	}
	return BoundMethod{fn: f}, nil
}

// Invoke calls the resolved function with bound arguments. A method without
// parameters is called without arguments.
func (m BoundMethod) Invoke(req *web.Request, res *web.Response) error {
	return m.fn.Call(req, res)
}

// Receiver returns the controller instance, nil for plain functions.
func (m BoundMethod) Receiver() any { return m.recv }

// NumIn returns the number of declared parameters.
func (m BoundMethod) NumIn() int { return m.fn.NumIn() }

func (m BoundMethod) String() string { return m.fn.Name() }

func (BoundMethod) target() {}

// TargetOf converts a handler value to a Target. Accepted values, in order:
// a Target, a Handler, func(*web.Request, *web.Response) error,
// func(*web.Request, *web.Response), or any other non-variadic function.
func TargetOf(h any) (Target, error) {
	switch v := h.(type) {
	case nil:
		return nil, ErrNilTarget
	case Target:
		return v, nil
	case Handler:
		return Handle(v), nil
	case func(*web.Request, *web.Response) error:
		if v == nil {
			return nil, ErrNilTarget
		}
		return HandleFunc(v), nil
	case func(*web.Request, *web.Response):
		if v == nil {
			return nil, ErrNilTarget
		}
		return Callback{
			h: HandlerFunc(func(req *web.Request, res *web.Response) error {
				v(req, res)
				return nil
			}),
			name: "func(*web.Request, *web.Response)",
		}, nil
	}

	t, err := Func(h)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedHandler, err)
	}
	return t, nil
}
