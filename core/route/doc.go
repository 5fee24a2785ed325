// Package route holds the route table consulted by the dispatcher.
//
// A Route binds a method and a path pattern to a Target. Targets come in two
// forms: a Callback wraps a Handler and is called directly, a BoundMethod
// wraps a function or controller method whose arguments are filled by the
// binder package.
//
//	tbl := route.NewTable()
//	tbl.Get("/users/:id", func(req *web.Request, res *web.Response) error {
//		return res.Text("user " + req.Param("id"))
//	})
//	tbl.Before("/admin/**", requireAdmin)
//	tbl.After("/users/*", audit)
//
// Main routes are looked up in a chi routing tree, so chi syntax such as
// {id:[0-9]+} is accepted next to :id. Interceptors are selected with
// doublestar globs: a named parameter matches one segment, a trailing * or **
// matches any depth.
package route
