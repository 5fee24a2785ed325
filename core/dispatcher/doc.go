// Package dispatcher turns one inbound HTTP request into exactly one
// terminal outcome: skipped (static content), success, not found, or server
// error.
//
// The pipeline for a request is:
//
//  1. Compute the routing path: the request path minus the context path,
//     cleaned, always starting with "/".
//  2. Paths under a static folder are handed to the static handler, if any,
//     and never reach the route table.
//  3. Wrap the request and response and bind the per-request context
//     (see web.Current).
//  4. Look the route up. A miss renders the 404 view or a plain
//     "404 Not Found: <path>" message with status 404.
//  5. Run the before interceptors, the main handler and the after
//     interceptors, in that order. Path parameters and the per-request
//     context are re-bound before every step.
//
// A returned error or a panic in any step stops the pipeline. The fault is
// logged with its full cause chain (and the stack for panics) and, unless the
// response is already committed, answered with status 500 and
// InternalErrorBody.
//
// Basic usage:
//
//	tbl := route.NewTable()
//	tbl.Get("/users/:id", showUser)
//
//	d := dispatcher.New(tbl,
//		dispatcher.WithLogger(log),
//		dispatcher.WithStaticFolders("/static"),
//		dispatcher.WithStaticHandler(static.Dir("./public")),
//		dispatcher.WithRenderer(tmpl),
//		dispatcher.WithNotFoundView("errors/404"),
//	)
//	http.ListenAndServe(":8080", d)
package dispatcher
