// Package render provides web.Renderer implementations.
//
// Template renders html/template files parsed from an fs.FS:
//
//	//go:embed views
//	var views embed.FS
//
//	sub, _ := fs.Sub(views, "views")
//	tmpl, err := render.ParseFS(sub, []string{"*.html", "*/*.html"})
//	// "users/show" resolves to users/show.html
//
// Templ renders templ components registered by view name:
//
//	r := render.NewTempl().
//		Register("users/show", func(data map[string]any) templ.Component {
//			return views.UserPage(data["user"].(User))
//		})
//
// Chain combines several renderers, falling through on ErrViewNotFound.
package render
