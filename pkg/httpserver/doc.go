// Package httpserver runs an http.Handler with configurable timeouts,
// lifecycle hooks and graceful shutdown on context cancellation, SIGINT or
// SIGTERM.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// When shutdown starts, the context of every in-flight request is cancelled
// so that streaming handlers return promptly.
//
// HealthCheckHandler answers liveness checks, or readiness checks when
// dependency checks are supplied.
package httpserver
