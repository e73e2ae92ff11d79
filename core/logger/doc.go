// Package logger builds slog loggers and provides attribute helpers.
//
//	log := logger.New(
//		logger.WithProduction("rememberme-api"),
//		logger.WithContextExtractors(middleware.RequestIDExtractor),
//	)
//	log.InfoContext(ctx, "word created", logger.Component("api"), logger.WordID(id))
//
// Context extractors attach request-scoped values, such as the request ID, to every
// record logged through the *Context methods.
package logger
