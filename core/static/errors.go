package static

import "errors"

var (
	ErrRootNotFound = errors.New("static root does not exist")
	ErrNotDir       = errors.New("static root is not a directory")
	ErrIsDir        = errors.New("static file is a directory")
)
