// Package httpserver runs an http.Server with graceful shutdown, functional
// options and health-check handlers.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives, then
// shuts the server down within the configured timeout. Shutdown cancels every
// request context first, which ends open SSE streams promptly.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps listen errors with ErrStart and Shutdown wraps shutdown errors with
// ErrShutdown.
package httpserver
