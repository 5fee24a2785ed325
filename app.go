package mvc

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/mvc/core/config"
	"github.com/dmitrymomot/mvc/core/dispatcher"
	"github.com/dmitrymomot/mvc/core/logger"
	"github.com/dmitrymomot/mvc/core/route"
	"github.com/dmitrymomot/mvc/core/server"
	"github.com/dmitrymomot/mvc/core/static"
	"github.com/dmitrymomot/mvc/core/web"
)

// App ties a route table, a dispatcher and an HTTP server together.
type App struct {
	config     *Config
	table      *route.Table
	dispatcher *dispatcher.Dispatcher
	server     *server.Server
	renderer   web.Renderer
	static     http.Handler
	logger     *slog.Logger
	extra      []dispatcher.Option
}

// Option configures an App during creation.
type Option func(*App) error

// New creates an App. Without WithConfig the configuration is loaded from
// the environment (and a .env file, if present).
func New(opts ...Option) (*App, error) {
	app := &App{
		logger: logger.Nop(),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		var cfg Config
		if err := config.Load(&cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		app.config = &cfg
	}

	if app.table == nil {
		app.table = route.NewTable()
	}

	if app.static == nil && app.config.StaticRoot != "" {
		h, err := staticDir(app.config.StaticRoot, app.config.Dispatcher.ContextPath)
		if err != nil {
			return nil, err
		}
		app.static = h
	}

	dopts := []dispatcher.Option{
		dispatcher.WithConfig(app.config.Dispatcher),
		dispatcher.WithLogger(app.logger),
		dispatcher.WithRenderer(app.renderer),
	}
	if app.static != nil {
		dopts = append(dopts, dispatcher.WithStaticHandler(app.static))
	}
	app.dispatcher = dispatcher.New(app.table, append(dopts, app.extra...)...)

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

func staticDir(root, contextPath string) (http.Handler, error) {
	var opts []static.DirOption
	if contextPath != "" && contextPath != "/" {
		opts = append(opts, static.WithStripPrefix(contextPath))
	}
	h, err := static.OpenDir(root, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStaticRoot, err)
	}
	return h, nil
}

// WithConfig sets the configuration instead of loading it from the environment.
func WithConfig(cfg Config) Option {
	return func(app *App) error {
		app.config = &cfg
		return nil
	}
}

// WithLogger sets the logger shared by the dispatcher and the server.
func WithLogger(log *slog.Logger) Option {
	return func(app *App) error {
		if log == nil {
			return ErrNilLogger
		}
		app.logger = log
		return nil
	}
}

// WithTable uses an existing route table.
func WithTable(t *route.Table) Option {
	return func(app *App) error {
		if t == nil {
			return ErrNilTable
		}
		app.table = t
		return nil
	}
}

// WithServer uses an existing server instead of one built from Config.Server.
func WithServer(s *server.Server) Option {
	return func(app *App) error {
		if s == nil {
			return ErrNilServer
		}
		app.server = s
		return nil
	}
}

// WithRenderer sets the view renderer.
func WithRenderer(r web.Renderer) Option {
	return func(app *App) error {
		app.renderer = r
		return nil
	}
}

// WithStaticHandler sets the handler for static folders, overriding StaticRoot.
func WithStaticHandler(h http.Handler) Option {
	return func(app *App) error {
		app.static = h
		return nil
	}
}

// WithDispatcherOptions appends raw dispatcher options. They are applied
// after the ones derived from Config.
func WithDispatcherOptions(opts ...dispatcher.Option) Option {
	return func(app *App) error {
		app.extra = append(app.extra, opts...)
		return nil
	}
}

// Config returns the effective configuration.
func (a *App) Config() Config {
	return *a.config
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Table returns the route table.
func (a *App) Table() *route.Table {
	return a.table
}

// Dispatcher returns the request dispatcher.
func (a *App) Dispatcher() *dispatcher.Dispatcher {
	return a.dispatcher
}

// Server returns the HTTP server.
func (a *App) Server() *server.Server {
	return a.server
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.dispatcher.ServeHTTP(w, r)
}

// Run serves HTTP until ctx is cancelled, then shuts the server down
// gracefully. Extra runners share the lifecycle: the first one to fail
// cancels the rest.
func (a *App) Run(ctx context.Context, runners ...func(ctx context.Context) error) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(a.server.Run(ctx, a.dispatcher))
	for _, run := range runners {
		eg.Go(func() error { return run(ctx) })
	}

	if err := eg.Wait(); err != nil {
		a.logger.Error("application stopped with error",
			logger.Component("app"),
			logger.Error(err),
		)
		return err
	}
	a.logger.Info("application stopped", logger.Component("app"))
	return nil
}
