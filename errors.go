package mvc

import "errors"

var (
	ErrNilLogger     = errors.New("logger cannot be nil")
	ErrNilTable      = errors.New("route table cannot be nil")
	ErrNilServer     = errors.New("server cannot be nil")
	ErrStaticRoot    = errors.New("invalid static root")
	ErrInvalidConfig = errors.New("invalid configuration")
)
