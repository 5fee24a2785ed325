package mvc

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/mvc/core/route"
)

// Handle registers h for method and pattern. h may be any shape accepted by
// route.TargetOf. Registration errors are programming errors, so Handle
// panics on them; use Table().Handle to get the error instead.
func (a *App) Handle(method, pattern string, h any) *route.Route {
	return must(a.table.Handle(method, pattern, h))
}

// Get registers a GET route.
func (a *App) Get(pattern string, h any) *route.Route {
	return a.Handle(http.MethodGet, pattern, h)
}

// Post registers a POST route.
func (a *App) Post(pattern string, h any) *route.Route {
	return a.Handle(http.MethodPost, pattern, h)
}

// Put registers a PUT route.
func (a *App) Put(pattern string, h any) *route.Route {
	return a.Handle(http.MethodPut, pattern, h)
}

// Delete registers a DELETE route.
func (a *App) Delete(pattern string, h any) *route.Route {
	return a.Handle(http.MethodDelete, pattern, h)
}

// Patch registers a PATCH route.
func (a *App) Patch(pattern string, h any) *route.Route {
	return a.Handle(http.MethodPatch, pattern, h)
}

// Head registers a HEAD route.
func (a *App) Head(pattern string, h any) *route.Route {
	return a.Handle(http.MethodHead, pattern, h)
}

// Options registers an OPTIONS route.
func (a *App) Options(pattern string, h any) *route.Route {
	return a.Handle(http.MethodOptions, pattern, h)
}

// Any registers a route matching every method.
func (a *App) Any(pattern string, h any) *route.Route {
	return a.Handle(route.MethodAny, pattern, h)
}

// Before registers an interceptor run before handlers whose path matches
// the glob pattern.
func (a *App) Before(pattern string, h any) *route.Route {
	return must(a.table.Before(pattern, h))
}

// After registers an interceptor run after handlers whose path matches
// the glob pattern.
func (a *App) After(pattern string, h any) *route.Route {
	return must(a.table.After(pattern, h))
}

// Controller registers the named methods of recv, keyed by "METHOD pattern":
//
//	app.Controller(&users{}, map[string]string{
//		"GET /users/:id":  "Show",
//		"POST /users":     "Create",
//	})
func (a *App) Controller(recv any, actions map[string]string) {
	for key, name := range actions {
		method, pattern, ok := cutRouteKey(key)
		if !ok {
			panic("mvc: invalid route key " + key)
		}
		t, err := route.Method(recv, name)
		if err != nil {
			panic(err)
		}
		must(a.table.Add(method, pattern, t))
	}
}

func cutRouteKey(key string) (method, pattern string, ok bool) {
	method, pattern, ok = strings.Cut(strings.TrimSpace(key), " ")
	pattern = strings.TrimSpace(pattern)
	return method, pattern, ok && method != "" && pattern != ""
}

func must(r *route.Route, err error) *route.Route {
	if err != nil {
		panic(err)
	}
	return r
}
