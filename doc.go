// Package mvc is a small MVC web framework built around a per-request
// dispatcher. An App owns a route table, a dispatcher and an HTTP server:
//
//	app, err := mvc.New(mvc.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	app.Before("/**", middleware.RequestID())
//	app.Get("/users/:id", func(req *web.Request, res *web.Response) error {
//		return res.JSON(map[string]string{"id": req.Param("id")})
//	})
//	app.Controller(&users{}, map[string]string{
//		"POST /users": "Create",
//	})
//
//	return app.Run(ctx)
//
// Handlers may be plain functions, route.Handler values, or controller
// methods. A controller method parameter typed *web.Request or
// *web.Response receives the current value; any other parameter receives
// its zero value. Registration helpers panic on invalid input; the
// table returned by Table reports errors instead.
//
// Configuration is read from the environment by default (see Config):
// MVC_DEBUG, MVC_STATIC_FOLDERS, MVC_STATIC_ROOT, MVC_VIEW_404,
// MVC_CONTEXT_PATH and the SERVER_* variables of core/server.
package mvc
