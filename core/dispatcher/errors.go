package dispatcher

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTarget is returned when a matched route has no target.
	ErrNilTarget = errors.New("route has no target")

	// ErrNilResolver is the panic value of New when called without a resolver.
	ErrNilResolver = errors.New("dispatcher: nil resolver")
)

// PanicError wraps a value recovered from a panicking handler or
// interceptor, together with the stack captured at the panic point.
type PanicError struct {
	value any
	stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the original panic value.
func (e *PanicError) Value() any {
	return e.value
}

// Stack returns the stack trace.
func (e *PanicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *PanicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
