package route

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-chi/chi/v5"
)

// Table stores routes and interceptors. Main routes are indexed in a chi
// routing tree; patterns chi cannot express (globs inside the path) fall back
// to a linear scan. Interceptors are selected by glob match on the path.
//
// Table is safe for concurrent use. Registration normally happens at startup.
type Table struct {
	mu     sync.RWMutex
	tree   *chi.Mux
	routes map[string]*Route // "METHOD chiPattern"
	loose  []*Route          // in registration order
	all    []*Route
	before []interceptor
	after  []interceptor
}

type interceptor struct {
	route *Route
	glob  string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		tree:   chi.NewMux(),
		routes: make(map[string]*Route),
	}
}

// Add registers a main route. Registering the same method and pattern twice
// replaces the earlier target.
func (t *Table) Add(method, pattern string, target Target) (*Route, error) {
	r, err := New(method, pattern, target)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	chiPattern, ok := toChiPattern(pattern)
	if ok {
		if err := t.mount(r.method, chiPattern); err != nil {
			return nil, err
		}
		key := r.method + " " + chiPattern
		if prev, dup := t.routes[key]; dup {
			t.replace(prev, r)
		} else {
			t.all = append(t.all, r)
		}
		t.routes[key] = r
		return r, nil
	}

	t.loose = append(t.loose, r)
	t.all = append(t.all, r)
	return r, nil
}

// Handle converts h with TargetOf and registers it.
func (t *Table) Handle(method, pattern string, h any) (*Route, error) {
	target, err := TargetOf(h)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, pattern, err)
	}
	return t.Add(method, pattern, target)
}

// Get registers a GET route.
func (t *Table) Get(pattern string, h any) (*Route, error) {
	return t.Handle(http.MethodGet, pattern, h)
}

// Post registers a POST route.
func (t *Table) Post(pattern string, h any) (*Route, error) {
	return t.Handle(http.MethodPost, pattern, h)
}

// Put registers a PUT route.
func (t *Table) Put(pattern string, h any) (*Route, error) {
	return t.Handle(http.MethodPut, pattern, h)
}

// Delete registers a DELETE route.
func (t *Table) Delete(pattern string, h any) (*Route, error) {
	return t.Handle(http.MethodDelete, pattern, h)
}

// Patch registers a PATCH route.
func (t *Table) Patch(pattern string, h any) (*Route, error) {
	return t.Handle(http.MethodPatch, pattern, h)
}

// Head registers a HEAD route.
func (t *Table) Head(pattern string, h any) (*Route, error) {
	return t.Handle(http.MethodHead, pattern, h)
}

// Options registers an OPTIONS route.
func (t *Table) Options(pattern string, h any) (*Route, error) {
	return t.Handle(http.MethodOptions, pattern, h)
}

// Any registers a route matching every method. A method specific route for
// the same pattern takes precedence.
func (t *Table) Any(pattern string, h any) (*Route, error) {
	return t.Handle(MethodAny, pattern, h)
}

// Before registers an interceptor run before the main handler of every
// request whose path matches pattern.
func (t *Table) Before(pattern string, h any) (*Route, error) {
	return t.intercept(&t.before, pattern, h)
}

// After registers an interceptor run after the main handler returned
// normally, for every request whose path matches pattern.
func (t *Table) After(pattern string, h any) (*Route, error) {
	return t.intercept(&t.after, pattern, h)
}

// Match returns the route for method and path, or nil.
func (t *Table) Match(method, path string) *Route {
	method = strings.ToUpper(method)

	t.mu.RLock()
	defer t.mu.RUnlock()

	rctx := chi.NewRouteContext()
	if found := t.tree.Find(rctx, method, path); found != "" {
		if r, ok := t.routes[method+" "+found]; ok {
			return r
		}
		if r, ok := t.routes[MethodAny+" "+found]; ok {
			return r
		}
	}

	for _, r := range t.loose {
		if r.method != method && r.method != MethodAny {
			continue
		}
		if _, ok := r.compiled.Extract(path); ok {
			return r
		}
	}
	return nil
}

// BeforeChain returns the before interceptors matching path, in
// registration order. The slice is owned by the caller.
func (t *Table) BeforeChain(path string) []*Route {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return selectChain(t.before, path)
}

// AfterChain returns the after interceptors matching path, in registration
// order. The slice is owned by the caller.
func (t *Table) AfterChain(path string) []*Route {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return selectChain(t.after, path)
}

// Routes returns the main routes in registration order.
func (t *Table) Routes() []*Route {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*Route, len(t.all))
	copy(out, t.all)
	return out
}

// Len returns the number of main routes.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.all)
}

func (t *Table) intercept(list *[]interceptor, pattern string, h any) (*Route, error) {
	target, err := TargetOf(h)
	if err != nil {
		return nil, fmt.Errorf("interceptor %s: %w", pattern, err)
	}
	r, err := New(MethodAny, pattern, target)
	if err != nil {
		return nil, err
	}

	glob := toGlob(pattern)
	if !doublestar.ValidatePattern(glob) {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern)
	}

	t.mu.Lock()
	*list = append(*list, interceptor{route: r, glob: glob})
	t.mu.Unlock()
	return r, nil
}

// mount registers a placeholder endpoint in the chi tree. chi reports
// pattern errors by panicking.
func (t *Table) mount(method, pattern string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidPattern, p)
		}
	}()

	if method == MethodAny {
		t.tree.Handle(pattern, http.NotFoundHandler())
	} else {
		t.tree.Method(method, pattern, http.NotFoundHandler())
	}
	return nil
}

func (t *Table) replace(prev, next *Route) {
	for i, r := range t.all {
		if r == prev {
			t.all[i] = next
			return
		}
	}
}

func selectChain(list []interceptor, path string) []*Route {
	var out []*Route
	for _, ic := range list {
		if ok, _ := doublestar.Match(ic.glob, path); ok {
			out = append(out, ic.route)
		}
	}
	return out
}

// toChiPattern rewrites a pattern into chi syntax. It reports false when the
// pattern holds a wildcard chi cannot place, such as a glob segment inside
// the path.
func toChiPattern(pattern string) (string, bool) {
	parts := strings.Split(pattern, "/")
	for i, part := range parts {
		last := i == len(parts)-1
		switch {
		case strings.HasPrefix(part, ":"):
			parts[i] = "{" + part[1:] + "}"
		case strings.HasPrefix(part, "{"):
		case part == "*" || part == "**":
			if !last {
				return "", false
			}
			parts[i] = "*"
		case strings.ContainsAny(part, "*?["):
			return "", false
		}
	}
	return strings.Join(parts, "/"), true
}

// toGlob rewrites a pattern into a doublestar glob. Named parameters match a
// single segment and a trailing wildcard matches any depth.
func toGlob(pattern string) string {
	parts := strings.Split(pattern, "/")
	for i, part := range parts {
		switch {
		case strings.HasPrefix(part, ":"), strings.HasPrefix(part, "{"):
			parts[i] = "*"
		case part == "*" && i == len(parts)-1:
			parts[i] = "**"
		}
	}
	return strings.Join(parts, "/")
}
