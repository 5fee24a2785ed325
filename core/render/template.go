package render

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/dmitrymomot/mvc/core/web"
)

// Template renders views with html/template. A view name is looked up as is
// and then with the configured extension appended, so "users/show" finds a
// template named "users/show.html".
type Template struct {
	tmpl *template.Template
	ext  string
}

// TemplateOption configures a Template.
type TemplateOption func(*templateConfig)

type templateConfig struct {
	ext   string
	funcs template.FuncMap
}

// WithExtension sets the extension tried when a view name has no exact match.
// Default is ".html".
func WithExtension(ext string) TemplateOption {
	return func(c *templateConfig) {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.ext = ext
	}
}

// WithFuncs adds template functions. Only used by ParseFS.
func WithFuncs(funcs template.FuncMap) TemplateOption {
	return func(c *templateConfig) {
		c.funcs = funcs
	}
}

func newTemplateConfig(opts []TemplateOption) *templateConfig {
	c := &templateConfig{ext: ".html"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTemplate wraps an already parsed template set.
func NewTemplate(tmpl *template.Template, opts ...TemplateOption) (*Template, error) {
	if parsedCount(tmpl) == 0 {
		return nil, ErrNoTemplates
	}
	c := newTemplateConfig(opts)
	return &Template{tmpl: tmpl, ext: c.ext}, nil
}

// ParseFS parses the templates in fsys matching patterns. Templates are
// named by their path inside fsys.
func ParseFS(fsys fs.FS, patterns []string, opts ...TemplateOption) (*Template, error) {
	c := newTemplateConfig(opts)

	root := template.New("")
	if c.funcs != nil {
		root = root.Funcs(c.funcs)
	}

	parsed := 0
	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob templates %q: %w", pattern, err)
		}
		for _, name := range matches {
			b, err := fs.ReadFile(fsys, name)
			if err != nil {
				return nil, fmt.Errorf("read template %q: %w", name, err)
			}
			if _, err := root.New(name).Parse(string(b)); err != nil {
				return nil, fmt.Errorf("parse template %q: %w", name, err)
			}
			parsed++
		}
	}

	if parsed == 0 {
		return nil, ErrNoTemplates
	}
	return &Template{tmpl: root, ext: c.ext}, nil
}

// parsedCount counts templates with a body. The empty root created by
// template.New is part of Templates() but has no parse tree.
func parsedCount(tmpl *template.Template) int {
	if tmpl == nil {
		return 0
	}
	n := 0
	for _, t := range tmpl.Templates() {
		if t.Tree != nil {
			n++
		}
	}
	return n
}

// Render executes the template named by the view with the view model.
func (t *Template) Render(_ context.Context, w io.Writer, view web.View) error {
	tmpl := t.lookup(view.Name)
	if tmpl == nil {
		return fmt.Errorf("%w: %q", ErrViewNotFound, view.Name)
	}
	return tmpl.Execute(w, view.Data)
}

// Has reports whether a template exists for the view name.
func (t *Template) Has(name string) bool {
	return t.lookup(name) != nil
}

func (t *Template) lookup(name string) *template.Template {
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return nil
	}
	if tmpl := t.tmpl.Lookup(name); tmpl != nil {
		return tmpl
	}
	if t.ext != "" && !strings.HasSuffix(name, t.ext) {
		return t.tmpl.Lookup(name + t.ext)
	}
	return nil
}
