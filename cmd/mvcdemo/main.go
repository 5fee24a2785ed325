// Command mvcdemo runs a small application on top of the mvc dispatcher.
package main

import (
	"context"
	"embed"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/mvc"
	"github.com/dmitrymomot/mvc/core/config"
	"github.com/dmitrymomot/mvc/core/logger"
	"github.com/dmitrymomot/mvc/core/render"
	"github.com/dmitrymomot/mvc/core/static"
	"github.com/dmitrymomot/mvc/middleware"
)

//go:embed views
var views embed.FS

//go:embed public
var public embed.FS

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg mvc.Config
	config.MustLoad(&cfg)
	if cfg.Dispatcher.NotFoundView == "" {
		cfg.Dispatcher.NotFoundView = "404"
	}
	if len(cfg.Dispatcher.StaticFolders) == 0 {
		cfg.Dispatcher.StaticFolders = []string{"/assets"}
	}

	log := logger.New(logger.WithDevelopment(cfg.AppName))

	renderer, err := newRenderer()
	if err != nil {
		log.Error("Failed to load views", logger.Component("render"), logger.Error(err))
		os.Exit(1)
	}

	app, err := mvc.New(
		mvc.WithConfig(cfg),
		mvc.WithLogger(log),
		mvc.WithRenderer(renderer),
		mvc.WithStaticHandler(static.FS(public, static.WithSubFS("public"))),
	)
	if err != nil {
		log.Error("Failed to create application", logger.Component("app"), logger.Error(err))
		os.Exit(1)
	}

	before, after := middleware.Logging(log.With(logger.Component("http.request")))
	app.Before("/**", middleware.RequestID())
	app.Before("/**", middleware.SecurityHeaders())
	app.Before("/**", before)
	app.After("/**", after)

	app.Get("/health", health)
	app.Controller(newUsers(), map[string]string{
		"GET /users":          "Index",
		"GET /users/:id":      "Show",
		"GET /users/:id/card": "Card",
		"POST /users":         "Create",
	})

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}

func newRenderer() (render.Chain, error) {
	sub, err := fs.Sub(views, "views")
	if err != nil {
		return nil, err
	}
	tmpl, err := render.ParseFS(sub, []string{"*.html", "users/*.html"}, render.WithExtension(".html"))
	if err != nil {
		return nil, err
	}
	components := render.NewTempl().Register("users/card", userCard)
	return render.Chain{components, tmpl}, nil
}

func userCard(data map[string]any) templ.Component {
	name, _ := data["name"].(string)
	return templ.Raw(`<div class="card">` + templ.EscapeString(name) + `</div>`)
}
