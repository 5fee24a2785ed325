package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mvc/core/route"
	"github.com/dmitrymomot/mvc/core/web"
)

// requestIDKey is the request attribute holding the ID.
const requestIDKey = "request_id"

type requestIDContextKey struct{}

// RequestIDConfig configures the request ID interceptor.
type RequestIDConfig struct {
	// Skip defines a function to skip the interceptor for specific requests
	Skip func(req *web.Request) bool

	// Generator creates new request IDs (default: UUID v4)
	Generator func() string

	// HeaderName is the header carrying the ID (default: X-Request-ID)
	HeaderName string

	// UseExisting keeps an inbound ID instead of generating one
	UseExisting bool
}

// RequestID returns a before-interceptor that assigns every request a UUID
// and echoes it in the X-Request-ID response header.
//
//	table.Before("/**", middleware.RequestID())
func RequestID() route.HandlerFunc {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig returns a request ID interceptor with custom configuration.
func RequestIDWithConfig(cfg RequestIDConfig) route.HandlerFunc {
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}

	return func(req *web.Request, res *web.Response) error {
		if cfg.Skip != nil && cfg.Skip(req) {
			return nil
		}

		// Several matching before chains may register the interceptor.
		if id, ok := GetRequestID(req); ok {
			res.Header().Set(cfg.HeaderName, id)
			return nil
		}

		var id string
		if cfg.UseExisting {
			id = req.Header(cfg.HeaderName)
		}
		if id == "" {
			id = cfg.Generator()
		}

		req.Set(requestIDKey, id)
		req.SetValue(requestIDContextKey{}, id)
		res.Header().Set(cfg.HeaderName, id)
		return nil
	}
}

// GetRequestID returns the request ID assigned to req.
func GetRequestID(req *web.Request) (string, bool) {
	v, ok := req.Get(requestIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// RequestIDFromContext returns the request ID stored in ctx. Handlers that
// only hold the request context use it.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok && id != ""
}
