// Package middleware provides request interceptors for common cross-cutting
// concerns: request IDs, access logging and security headers.
//
// Every constructor returns a route.HandlerFunc, the same shape as a route
// handler. Interceptors are registered on a route table with a glob pattern
// and run before or after the matched handler:
//
//	table := route.NewTable()
//	table.Before("/**", middleware.RequestID())
//	table.Before("/**", middleware.SecurityHeaders())
//
//	before, after := middleware.Logging(log)
//	table.Before("/**", before)
//	table.After("/**", after)
//
// Each constructor has a WithConfig variant with a Skip hook:
//
//	mw := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
//		UseExisting: true,
//		Skip: func(req *web.Request) bool {
//			return req.Path() == "/health"
//		},
//	})
//
// Handlers read the request ID with GetRequestID, or with
// RequestIDFromContext when only the context is at hand.
package middleware
