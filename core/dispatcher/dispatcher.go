package dispatcher

import (
	"errors"
	"log/slog"
	"net/http"
	"path"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dmitrymomot/mvc/core/logger"
	"github.com/dmitrymomot/mvc/core/route"
	"github.com/dmitrymomot/mvc/core/static"
	"github.com/dmitrymomot/mvc/core/web"
)

// InternalErrorBody is written with status 500 when a fault is caught
// before the response was committed.
const InternalErrorBody = `<html><head><title>500 Internal Server Error</title></head>` +
	`<body><center><h1>500 Internal Server Error</h1></center></body></html>`

// Resolver looks up routes and interceptors. A miss is not an error.
// *route.Table implements it.
type Resolver interface {
	Match(method, path string) *route.Route
	BeforeChain(path string) []*route.Route
	AfterChain(path string) []*route.Route
}

// Dispatcher runs the per-request pipeline: static filter, route lookup,
// before chain, main handler, after chain. Every fault after the request
// context is primed is caught here and turned into a 500 response.
//
// Dispatcher is safe for concurrent use; all request state lives in values
// created per call.
type Dispatcher struct {
	resolver  Resolver
	cfg       Config
	filter    *static.Filter
	static    http.Handler
	renderer  web.Renderer
	logger    *slog.Logger
	transport web.Transport
}

// New creates a dispatcher over resolver. It panics if resolver is nil.
func New(resolver Resolver, opts ...Option) *Dispatcher {
	if resolver == nil {
		panic(ErrNilResolver)
	}

	d := &Dispatcher{
		resolver: resolver,
		cfg:      DefaultConfig(),
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.cfg.ContextPath = normalizeContextPath(d.cfg.ContextPath)
	d.filter = static.NewFilter(d.cfg.StaticFolders...)
	d.transport = web.Transport{
		ContextPath: d.cfg.ContextPath,
		Debug:       d.cfg.Debug,
	}
	return d
}

// Config returns the effective configuration.
func (d *Dispatcher) Config() Config {
	return d.cfg
}

// ServeHTTP implements http.Handler.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.Dispatch(w, r)
}

// Dispatch handles one request and reports how it ended. It never panics
// and never returns an error: faults are logged and answered with 500.
func (d *Dispatcher) Dispatch(w http.ResponseWriter, r *http.Request) Outcome {
	method := r.Method
	relPath := d.relativePath(r.URL.Path)

	if !d.filter.Allow(relPath) {
		if d.static != nil {
			d.static.ServeHTTP(w, r)
		}
		return OutcomeSkipped
	}

	var start time.Time
	if d.cfg.Debug {
		start = time.Now()
		d.logger.Debug("Request : "+method+"\t"+relPath,
			logger.Component("dispatcher"),
			logger.Method(method),
			logger.Path(relPath),
		)
	}

	req := web.NewRequest(r, relPath)
	res := web.NewResponse(w, r, d.renderer)
	web.Bind(d.transport, req, res)

	outcome, err := d.serve(req, res)
	if err != nil {
		d.fault(req, res, err)
		outcome = OutcomeServerError
	}

	if d.cfg.Debug {
		d.logger.Debug("dispatched",
			logger.Component("dispatcher"),
			logger.Method(method),
			logger.Path(relPath),
			logger.Result(outcome.String()),
			logger.StatusCode(res.StatusCode()),
			logger.Duration(time.Since(start)),
		)
	}
	return outcome
}

// serve resolves and runs the route. Panics raised outside a target, for
// example by a custom resolver, are recovered here as well.
func (d *Dispatcher) serve(req *web.Request, res *web.Response) (outcome Outcome, err error) {
	defer func() {
		if p := recover(); p != nil {
			outcome, err = OutcomeServerError, &PanicError{value: p, stack: debug.Stack()}
		}
	}()

	rt := d.resolver.Match(req.Method(), req.Path())
	if rt == nil {
		if err := d.notFound(req, res); err != nil {
			return OutcomeServerError, err
		}
		return OutcomeNotFound, nil
	}

	if err := d.runChain(req, res, d.resolver.BeforeChain(req.Path())); err != nil {
		return OutcomeServerError, err
	}
	if err := d.invoke(req, res, rt); err != nil {
		return OutcomeServerError, err
	}
	if err := d.runChain(req, res, d.resolver.AfterChain(req.Path())); err != nil {
		return OutcomeServerError, err
	}
	return OutcomeSuccess, nil
}

// runChain invokes interceptors in order. The first fault stops the chain.
func (d *Dispatcher) runChain(req *web.Request, res *web.Response, chain []*route.Route) error {
	for _, rt := range chain {
		if err := d.invoke(req, res, rt); err != nil {
			return err
		}
	}
	return nil
}

// invoke binds the route's path parameters, re-binds the request context
// and calls the target. A panic in the target becomes a *PanicError.
func (d *Dispatcher) invoke(req *web.Request, res *web.Response, rt *route.Route) (err error) {
	if rt == nil || rt.Target() == nil {
		return ErrNilTarget
	}

	req.InitPathParams(rt.Pattern())
	web.Bind(d.transport, req, res)

	defer func() {
		if p := recover(); p != nil {
			err = &PanicError{value: p, stack: debug.Stack()}
		}
		if err != nil {
			err = &invokeError{route: rt, err: err}
		}
	}()

	return rt.Target().Invoke(req, res)
}

// notFound answers an unmatched request. Nothing is written once the
// response is committed.
func (d *Dispatcher) notFound(req *web.Request, res *web.Response) error {
	if res.Committed() {
		return nil
	}

	if d.cfg.NotFoundView != "" {
		view := web.NewView(d.cfg.NotFoundView).With("viewName", req.Path())
		return res.Status(http.StatusNotFound).Render(view)
	}

	return res.Status(http.StatusNotFound).Text("404 Not Found: " + req.Path())
}

// fault logs err with its cause chain and answers 500 unless the response
// is already committed.
func (d *Dispatcher) fault(req *web.Request, res *web.Response, err error) {
	attrs := []any{
		logger.Component("dispatcher"),
		logger.Method(req.Method()),
		logger.Path(req.Path()),
		logger.Error(err),
		logger.Cause(err),
	}

	var ie *invokeError
	if errors.As(err, &ie) {
		attrs = append(attrs, logger.Handler(ie.route.Target().String()))
	}

	var pe *PanicError
	if errors.As(err, &pe) {
		attrs = append(attrs, logger.Panic(pe.Value()), logger.StackBytes(pe.Stack()))
	}

	committed := res.Committed()
	attrs = append(attrs, slog.Bool("committed", committed))
	d.logger.Error("request failed", attrs...)

	if committed {
		return
	}
	if werr := res.Status(http.StatusInternalServerError).HTML(InternalErrorBody); werr != nil {
		d.logger.Error("write internal error response failed",
			logger.Component("dispatcher"),
			logger.Path(req.Path()),
			logger.Error(werr),
		)
	}
}

// relativePath strips the context path from the request path and cleans
// the result. The result always starts with "/".
func (d *Dispatcher) relativePath(uri string) string {
	if cp := d.cfg.ContextPath; cp != "" {
		if uri == cp {
			uri = "/"
		} else if strings.HasPrefix(uri, cp+"/") {
			uri = uri[len(cp):]
		}
	}
	if !strings.HasPrefix(uri, "/") {
		uri = "/" + uri
	}
	return path.Clean(uri)
}

func normalizeContextPath(cp string) string {
	cp = strings.TrimSpace(cp)
	if cp == "" || cp == "/" {
		return ""
	}
	if !strings.HasPrefix(cp, "/") {
		cp = "/" + cp
	}
	return strings.TrimSuffix(cp, "/")
}

// invokeError records which route faulted.
type invokeError struct {
	route *route.Route
	err   error
}

func (e *invokeError) Error() string {
	return e.route.Method() + " " + e.route.Path() + ": " + e.err.Error()
}

func (e *invokeError) Unwrap() error {
	return e.err
}
