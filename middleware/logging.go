package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/dmitrymomot/mvc/core/logger"
	"github.com/dmitrymomot/mvc/core/route"
	"github.com/dmitrymomot/mvc/core/web"
)

const accessLogStartKey = "access_log_start"

// LoggingConfig configures the access log interceptor pair.
type LoggingConfig struct {
	// Skip defines a function to skip logging for specific requests
	Skip func(req *web.Request) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// LogRequest enables the "request started" record (default: true)
	LogRequest bool

	// LogResponse enables the "request completed" record (default: true)
	LogResponse bool

	// LogHeaders enables logging of request headers (default: false)
	LogHeaders bool

	// SensitiveHeaders is a list of header names to redact
	SensitiveHeaders []string

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging returns a before/after interceptor pair that logs every routed
// request with default configuration.
//
//	before, after := middleware.Logging(log)
//	table.Before("/**", before)
//	table.After("/**", after)
//
// The after half does not run when the handler faults; the dispatcher logs
// those requests itself.
func Logging(log *slog.Logger) (before, after route.HandlerFunc) {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig returns an access log interceptor pair with custom configuration.
func LoggingWithConfig(cfg LoggingConfig) (before, after route.HandlerFunc) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if !cfg.LogRequest && !cfg.LogResponse {
		cfg.LogRequest = true
		cfg.LogResponse = true
	}
	if cfg.SensitiveHeaders == nil {
		cfg.SensitiveHeaders = []string{
			"Authorization",
			"Cookie",
			"Set-Cookie",
			"X-Api-Key",
			"X-Auth-Token",
			"X-Csrf-Token",
		}
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	before = func(req *web.Request, res *web.Response) error {
		if cfg.Skip != nil && cfg.Skip(req) {
			return nil
		}
		if _, ok := req.Get(accessLogStartKey); ok {
			return nil
		}
		req.Set(accessLogStartKey, time.Now())

		if !cfg.LogRequest {
			return nil
		}

		attrs := []slog.Attr{
			logger.Component(cfg.Component),
			logger.Event("request"),
			logger.Method(req.Method()),
			logger.Path(req.Path()),
		}
		if id, ok := GetRequestID(req); ok {
			attrs = append(attrs, logger.RequestID(id))
		}
		if cfg.LogHeaders {
			if headers := redact(req.Headers(), cfg.SensitiveHeaders); len(headers) > 0 {
				attrs = append(attrs, slog.Any("request_headers", headers))
			}
		}
		cfg.Logger.LogAttrs(req.Context(), cfg.LogLevel, "HTTP request started", attrs...)
		return nil
	}

	after = func(req *web.Request, res *web.Response) error {
		if cfg.Skip != nil && cfg.Skip(req) {
			return nil
		}
		v, ok := req.Get(accessLogStartKey)
		if !ok {
			return nil
		}
		start, ok := v.(time.Time)
		if !ok || !cfg.LogResponse {
			return nil
		}
		duration := time.Since(start)
		status := res.StatusCode()

		attrs := []slog.Attr{
			logger.Component(cfg.Component),
			logger.Event("response"),
			logger.Method(req.Method()),
			logger.Path(req.Path()),
			logger.StatusCode(status),
			logger.BytesOut(res.Size()),
			logger.Duration(duration),
		}
		if id, ok := GetRequestID(req); ok {
			attrs = append(attrs, logger.RequestID(id))
		}

		level := cfg.LogLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		case duration > cfg.SlowRequestThreshold:
			level = slog.LevelWarn
			attrs = append(attrs, slog.Bool("slow_request", true))
		}

		cfg.Logger.LogAttrs(req.Context(), level, "HTTP request completed", attrs...)
		return nil
	}

	return before, after
}

func redact(h http.Header, sensitive []string) map[string]any {
	headers := make(map[string]any, len(h))
	for key, values := range h {
		switch {
		case slices.Contains(sensitive, key):
			headers[key] = "[REDACTED]"
		case len(values) == 1:
			headers[key] = values[0]
		default:
			headers[key] = values
		}
	}
	return headers
}
