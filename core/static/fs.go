package static

import (
	"fmt"
	"io/fs"
	"net/http"
)

type fsConfig struct {
	stripPrefix string
	sub         string
}

// FSOption configures FS.
type FSOption func(*fsConfig)

// WithFSStripPrefix removes prefix from the URL path before the file lookup.
func WithFSStripPrefix(prefix string) FSOption {
	return func(c *fsConfig) {
		c.stripPrefix = prefix
	}
}

// WithSubFS serves the subtree at dir (slash separated) instead of the root.
func WithSubFS(dir string) FSOption {
	return func(c *fsConfig) {
		c.sub = dir
	}
}

// OpenFS returns a handler serving files from fsys, usually an embed.FS.
func OpenFS(fsys fs.FS, opts ...FSOption) (http.Handler, error) {
	cfg := &fsConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.sub != "" {
		sub, err := fs.Sub(fsys, cfg.sub)
		if err != nil {
			return nil, fmt.Errorf("static: sub tree %q: %w", cfg.sub, err)
		}
		fsys = sub
	}
	if _, err := fs.Stat(fsys, "."); err != nil {
		return nil, fmt.Errorf("static: open fs root: %w", err)
	}

	return fileServer(http.FS(fsys), cfg.stripPrefix), nil
}

// FS is like OpenFS but panics on error.
func FS(fsys fs.FS, opts ...FSOption) http.Handler {
	h, err := OpenFS(fsys, opts...)
	if err != nil {
		panic("static.FS: " + err.Error())
	}
	return h
}
