// Package static separates static content from dynamic routing.
//
// Filter holds the configured static path prefixes. The dispatcher consults
// it before routing: a path under a static prefix never reaches the route
// table and is handed to the configured static handler instead.
//
//	filter := static.NewFilter("/static", "/upload")
//	filter.Allow("/static/app.css") // false
//	filter.Allow("/users/42")       // true
//
// Dir, FS and File return plain http.Handler values for serving that
// content. Directory listing is disabled: a directory is served only when
// it holds an index.html.
//
//	d := dispatcher.New(table,
//		dispatcher.WithStaticFolders("/static"),
//		dispatcher.WithStaticHandler(static.Dir("./public")),
//	)
package static
