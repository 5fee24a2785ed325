package middleware

import (
	"maps"

	"github.com/dmitrymomot/mvc/core/route"
	"github.com/dmitrymomot/mvc/core/web"
)

// SecurityHeadersConfig lists the security headers set on every response.
// An empty field leaves the header unset.
type SecurityHeadersConfig struct {
	// Skip defines a function to skip the interceptor for specific requests
	Skip func(req *web.Request) bool

	ContentTypeOptions        string // X-Content-Type-Options
	FrameOptions              string // X-Frame-Options
	XSSProtection             string // X-XSS-Protection
	StrictTransportSecurity   string // Strict-Transport-Security
	ContentSecurityPolicy     string // Content-Security-Policy
	ReferrerPolicy            string // Referrer-Policy
	PermissionsPolicy         string // Permissions-Policy
	CrossOriginOpenerPolicy   string // Cross-Origin-Opener-Policy
	CrossOriginEmbedderPolicy string // Cross-Origin-Embedder-Policy
	CrossOriginResourcePolicy string // Cross-Origin-Resource-Policy

	// CustomHeaders are set after the fields above and may override them.
	CustomHeaders map[string]string

	// IsDevelopment drops Strict-Transport-Security so local HTTP keeps working.
	IsDevelopment bool
}

// Presets.
var (
	// StrictSecurity forbids framing, inline scripts and cross-origin
	// embedding. Views that pull third-party assets will break under it.
	StrictSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		FrameOptions:              "DENY",
		XSSProtection:             "0",
		StrictTransportSecurity:   "max-age=63072000; includeSubDomains; preload",
		ContentSecurityPolicy:     "default-src 'self'; object-src 'none'; frame-ancestors 'none'; base-uri 'self'; form-action 'self'",
		ReferrerPolicy:            "no-referrer",
		PermissionsPolicy:         "camera=(), geolocation=(), microphone=(), payment=(), usb=()",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginEmbedderPolicy: "require-corp",
		CrossOriginResourcePolicy: "same-origin",
	}

	// BalancedSecurity suits server-rendered views: same-origin framing and
	// inline styles and scripts are allowed.
	BalancedSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		FrameOptions:              "SAMEORIGIN",
		XSSProtection:             "0",
		StrictTransportSecurity:   "max-age=31536000; includeSubDomains",
		ContentSecurityPolicy:     "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:",
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		PermissionsPolicy:         "camera=(), geolocation=(), microphone=()",
		CrossOriginOpenerPolicy:   "same-origin-allow-popups",
		CrossOriginResourcePolicy: "same-site",
	}

	// RelaxedSecurity only sets headers that never break rendering.
	RelaxedSecurity = SecurityHeadersConfig{
		ContentTypeOptions: "nosniff",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
)

// SecurityHeaders returns a before-interceptor that sets the
// BalancedSecurity headers on every response it runs for.
//
//	table.Before("/**", middleware.SecurityHeaders())
//
// Headers are set before the handler runs, so a handler may still override
// any of them.
func SecurityHeaders() route.HandlerFunc {
	return SecurityHeadersWithConfig(BalancedSecurity)
}

// SecurityHeadersStrict returns a security headers interceptor using StrictSecurity.
func SecurityHeadersStrict() route.HandlerFunc {
	return SecurityHeadersWithConfig(StrictSecurity)
}

// SecurityHeadersRelaxed returns a security headers interceptor using RelaxedSecurity.
func SecurityHeadersRelaxed() route.HandlerFunc {
	return SecurityHeadersWithConfig(RelaxedSecurity)
}

// SecurityHeadersWithConfig returns a security headers interceptor with
// custom configuration.
func SecurityHeadersWithConfig(cfg SecurityHeadersConfig) route.HandlerFunc {
	if cfg.IsDevelopment {
		cfg.StrictTransportSecurity = ""
	}

	headers := make(map[string]string)
	set := func(name, value string) {
		if value != "" {
			headers[name] = value
		}
	}
	set("X-Content-Type-Options", cfg.ContentTypeOptions)
	set("X-Frame-Options", cfg.FrameOptions)
	set("X-XSS-Protection", cfg.XSSProtection)
	set("Strict-Transport-Security", cfg.StrictTransportSecurity)
	set("Content-Security-Policy", cfg.ContentSecurityPolicy)
	set("Referrer-Policy", cfg.ReferrerPolicy)
	set("Permissions-Policy", cfg.PermissionsPolicy)
	set("Cross-Origin-Opener-Policy", cfg.CrossOriginOpenerPolicy)
	set("Cross-Origin-Embedder-Policy", cfg.CrossOriginEmbedderPolicy)
	set("Cross-Origin-Resource-Policy", cfg.CrossOriginResourcePolicy)
	maps.Copy(headers, cfg.CustomHeaders)

	return func(req *web.Request, res *web.Response) error {
		if cfg.Skip != nil && cfg.Skip(req) {
			return nil
		}
		if res.Committed() {
			return nil
		}
		h := res.Header()
		for key, value := range headers {
			h.Set(key, value)
		}
		return nil
	}
}
