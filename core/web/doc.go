// Package web holds the per-dispatch abstractions handlers work with: the
// Request and Response wrappers over net/http, the per-request Context slot,
// compiled route path Patterns, and the View/Renderer contract.
//
// A Request and a Response are created once per dispatch and are owned by
// the serving goroutine. The dispatcher calls Bind before every handler and
// interceptor invocation, so code deep in a call stack can reach them:
//
//	func audit(ctx context.Context) {
//		if c := web.Current(ctx); c != nil {
//			log.Println(c.Request.Method(), c.Request.Path())
//		}
//	}
//
// Path parameters are extracted from the invoked route's pattern:
//
//	p := web.MustParsePattern("/users/:id")
//	params, ok := p.Extract("/users/42") // map[id:42], true
package web
