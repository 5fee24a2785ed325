package dispatcher

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/mvc/core/web"
)

// Option configures a Dispatcher during creation.
type Option func(*Dispatcher)

// WithConfig replaces the whole configuration. Options applied after it
// still adjust individual fields.
func WithConfig(cfg Config) Option {
	return func(d *Dispatcher) {
		d.cfg = cfg
	}
}

// WithLogger sets the logger for faults and debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithRenderer sets the renderer used by Response.Render and the custom 404 view.
func WithRenderer(r web.Renderer) Option {
	return func(d *Dispatcher) {
		d.renderer = r
	}
}

// WithStaticHandler sets the handler receiving requests under static folders.
// Without one, such requests get no response from the dispatcher.
func WithStaticHandler(h http.Handler) Option {
	return func(d *Dispatcher) {
		d.static = h
	}
}

// WithDebug toggles debug request logging. Records are emitted at
// slog.LevelDebug, so the logger must enable that level.
func WithDebug(debug bool) Option {
	return func(d *Dispatcher) {
		d.cfg.Debug = debug
	}
}

// WithStaticFolders adds static path prefixes.
func WithStaticFolders(prefixes ...string) Option {
	return func(d *Dispatcher) {
		d.cfg.StaticFolders = append(d.cfg.StaticFolders, prefixes...)
	}
}

// WithNotFoundView sets the view rendered for unmatched requests.
func WithNotFoundView(name string) Option {
	return func(d *Dispatcher) {
		d.cfg.NotFoundView = name
	}
}

// WithContextPath sets the deployment root stripped from request paths.
func WithContextPath(contextPath string) Option {
	return func(d *Dispatcher) {
		d.cfg.ContextPath = contextPath
	}
}
