package static

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

type dirConfig struct {
	stripPrefix string
	notFound    http.Handler
}

// DirOption configures Dir and OpenDir.
type DirOption func(*dirConfig)

// WithStripPrefix removes prefix from the URL path before the file lookup,
// typically the deployment context path.
func WithStripPrefix(prefix string) DirOption {
	return func(c *dirConfig) {
		c.stripPrefix = prefix
	}
}

// WithNotFound sets the handler for paths with no file behind them.
func WithNotFound(h http.Handler) DirOption {
	return func(c *dirConfig) {
		c.notFound = h
	}
}

// OpenDir returns a handler serving files below root. It fails when root
// is missing or not a directory.
func OpenDir(root string, opts ...DirOption) (http.Handler, error) {
	root = filepath.Clean(root)
	if err := checkRoot(root, true); err != nil {
		return nil, err
	}

	cfg := &dirConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	files := fileServer(http.Dir(root), cfg.stripPrefix)
	if cfg.notFound == nil {
		return files, nil
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		full := resolve(root, strings.TrimPrefix(r.URL.Path, cfg.stripPrefix))
		if _, err := os.Stat(full); err != nil {
			cfg.notFound.ServeHTTP(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}), nil
}

// Dir is like OpenDir but panics on an invalid root. Use it in startup code.
func Dir(root string, opts ...DirOption) http.Handler {
	h, err := OpenDir(root, opts...)
	if err != nil {
		panic("static.Dir: " + err.Error())
	}
	return h
}

// File returns a handler that always serves the single file at p,
// whatever the request path. It panics if p is missing or a directory.
func File(p string) http.Handler {
	p = filepath.Clean(p)
	if err := checkRoot(p, false); err != nil {
		panic("static.File: " + err.Error())
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, p)
	})
}
