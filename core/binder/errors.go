package binder

import "errors"

var (
	// ErrNotFunc is returned when a handler value is not a function.
	ErrNotFunc = errors.New("handler is not a function")

	// ErrNilReceiver is returned when a method is looked up on a nil receiver.
	ErrNilReceiver = errors.New("nil method receiver")

	// ErrMethodNotFound is returned when the receiver has no exported method
	// with the requested name.
	ErrMethodNotFound = errors.New("method not found on receiver")

	// ErrVariadic is returned for variadic handler functions.
	ErrVariadic = errors.New("variadic handlers are not supported")
)
