// Package httpserver runs the login host's HTTP server with graceful
// shutdown and serves its health probe.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives, then
// calls http.Server.Shutdown bounded by the shutdown timeout and runs the stop
// hooks:
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func(*slog.Logger) { _ = client.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthCheckHandler reports liveness when given no checks and readiness
// otherwise, e.g. with oauthstate.Healthcheck for the Redis state store.
//
// Listen failures wrap ErrStart and shutdown failures wrap ErrShutdown.
package httpserver
