// Package server wraps http.Server with graceful shutdown, environment
// driven configuration and production timeouts. It serves the dispatcher in
// an mvc.App, but accepts any http.Handler.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Run returns a function for errgroup: it starts the server and, when ctx is
// canceled, shuts it down within the configured shutdown timeout.
//
// Config is loaded with config.Load and reads SERVER_ADDR,
// SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT, SERVER_IDLE_TIMEOUT,
// SERVER_SHUTDOWN_TIMEOUT, SERVER_MAX_HEADER_BYTES, SERVER_TLS_CERT_FILE and
// SERVER_TLS_KEY_FILE.
package server
