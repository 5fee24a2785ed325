// Package logger provides structured logging built on log/slog: a small
// factory with environment presets and attribute helpers for the fields the
// dispatcher and the HTTP server log.
//
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	log.Error("handler fault",
//		logger.Method(req.Method()),
//		logger.Path(req.Path()),
//		logger.Error(err),
//		logger.Cause(err),
//	)
//
// Helpers return an empty slog.Attr for zero input, which slog drops, so
// they can be passed unconditionally.
package logger
