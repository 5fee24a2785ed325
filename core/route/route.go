package route

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/mvc/core/web"
)

// MethodAny registers a route for every method.
const MethodAny = "*"

var methods = map[string]struct{}{
	http.MethodConnect: {},
	http.MethodDelete:  {},
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodPatch:   {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodTrace:   {},
	MethodAny:          {},
}

// Route binds an HTTP method and a path pattern to a target. Routes are
// immutable once created.
type Route struct {
	method   string
	pattern  string
	compiled web.Pattern
	target   Target
}

// New validates and compiles a route.
func New(method, pattern string, target Target) (*Route, error) {
	method = strings.ToUpper(method)
	if _, ok := methods[method]; !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidMethod, method)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNilTarget, method, pattern)
	}

	compiled, err := web.ParsePattern(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	return &Route{
		method:   method,
		pattern:  pattern,
		compiled: compiled,
		target:   target,
	}, nil
}

// Method returns the HTTP method, or MethodAny.
func (r *Route) Method() string { return r.method }

// Path returns the raw path pattern.
func (r *Route) Path() string { return r.pattern }

// Pattern returns the compiled path pattern used to extract parameters.
func (r *Route) Pattern() web.Pattern { return r.compiled }

// Target returns the executable target.
func (r *Route) Target() Target { return r.target }

func (r *Route) String() string {
	return r.method + " " + r.pattern + " -> " + r.target.String()
}
