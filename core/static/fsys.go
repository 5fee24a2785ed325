package static

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// checkRoot stats p and reports whether it has the expected kind.
func checkRoot(p string, wantDir bool) error {
	info, err := os.Stat(p)
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s", ErrRootNotFound, p)
	case err != nil:
		return fmt.Errorf("stat %s: %w", p, err)
	case wantDir && !info.IsDir():
		return fmt.Errorf("%w: %s", ErrNotDir, p)
	case !wantDir && info.IsDir():
		return fmt.Errorf("%w: %s", ErrIsDir, p)
	}
	return nil
}

// resolve maps a URL path onto a file below root. Cleaning against "/"
// first keeps ".." segments from leaving root.
func resolve(root, urlPath string) string {
	return filepath.Join(root, filepath.FromSlash(path.Clean("/"+urlPath)))
}

// noListing hides directories that have no index.html, so http.FileServer
// answers 404 instead of rendering a listing.
type noListing struct {
	fs http.FileSystem
}

func (n noListing) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.IsDir() {
		return f, nil
	}

	idx, err := n.fs.Open(path.Join("/", name, "index.html"))
	if err != nil {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}
	_ = idx.Close()
	return f, nil
}

func fileServer(fsys http.FileSystem, stripPrefix string) http.Handler {
	var h http.Handler = http.FileServer(noListing{fs: fsys})
	if stripPrefix != "" {
		h = http.StripPrefix(stripPrefix, h)
	}
	return h
}
