package route

import "errors"

var (
	// ErrInvalidPattern is returned when a route path pattern cannot be compiled.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrInvalidMethod is returned for HTTP methods the table cannot route.
	ErrInvalidMethod = errors.New("unsupported http method")

	// ErrNilTarget is returned when a route is registered without a target.
	ErrNilTarget = errors.New("route target is nil")

	// ErrUnsupportedHandler is returned by TargetOf for values that are
	// neither a Target, a Handler nor a function.
	ErrUnsupportedHandler = errors.New("unsupported handler type")
)
