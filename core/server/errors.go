package server

import "errors"

var (
	// ErrMissingAddress is returned when server address is not provided.
	ErrMissingAddress = errors.New("server address is required")

	// ErrServerAlreadyRunning is returned by Start on a running server.
	ErrServerAlreadyRunning = errors.New("server is already running")

	// ErrNilHandler is returned by Start without a handler.
	ErrNilHandler = errors.New("server handler is nil")

	// ErrIncompleteTLS is returned when only one of the TLS files is configured.
	ErrIncompleteTLS = errors.New("both TLS certificate and key files are required")
)
