// Package logger builds *slog.Logger instances from functional options and
// injects request-scoped values from context.Context into every record.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in a context handler that runs the registered ContextExtractor
// callbacks on each Handle call.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "toastd"),
//	    logger.WithContextExtractors(requestIDExtractor),
//	)
//	log.InfoContext(ctx, "toast shown", logger.ToastID(id), logger.Category("success"))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
