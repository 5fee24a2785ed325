package web

import "errors"

var (
	ErrNoRenderer     = errors.New("no renderer configured")
	ErrInvalidPattern = errors.New("invalid route path pattern")
	ErrDuplicateParam = errors.New("routing pattern contains duplicate param key")
)
