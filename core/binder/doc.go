// Package binder maps a handler's declared parameters to the per-request
// objects available during a dispatch.
//
// Binding is deliberately minimal: a parameter whose type is exactly
// *web.Request or *web.Response receives the current instance, any other
// parameter receives its zero value. There is no dependency injection.
//
// The plan is resolved once, when a handler is registered:
//
//	f, err := binder.Compile(func(res *web.Response, req *web.Request) error {
//		return res.Text("user " + req.Param("id"))
//	})
//	...
//	err = f.Call(req, res)
//
// Exported controller methods can be resolved by name:
//
//	f, err := binder.Method(&UserController{}, "Show")
//
// Unexported methods are reachable through method values passed to Compile.
package binder
