// Package logger builds slog loggers with per-environment presets, helper
// attribute constructors and attributes injected from context.Context.
//
// New returns a *slog.Logger whose handler is wrapped in ContextHandler.
// The decorator runs every registered ContextExtractor on each record, which
// is how request ids and the environment end up on log lines without being
// passed around explicitly.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "folio"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "contact form submitted",
//	    logger.PageID(pageID),
//	    logger.Outcome("sent"),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
