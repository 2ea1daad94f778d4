// Package logger provides structured logging built on log/slog.
//
// New assembles a *slog.Logger from functional options. Environment presets pick
// the format and level, and context extractors copy request-scoped values (such
// as the request ID) into every record logged with a context.
//
//	import "github.com/dmitrymomot/comingsoon/core/logger"
//
//	// Development: text output, debug level
//	log := logger.New(logger.WithDevelopment("comingsoon"))
//
//	// Production: JSON output, info level
//	log := logger.New(
//		logger.WithProduction("comingsoon"),
//		logger.WithContextExtractors(middleware.RequestIDExtractor),
//	)
//
//	log.Info("server starting", logger.Component("server"))
//
// # Attribute Helpers
//
// Helpers such as Error, Component, Path and Latency build slog.Attr values with
// consistent keys. Helpers that take a possibly empty value return an empty
// slog.Attr, which slog drops, so callers do not need nil checks:
//
//	log.Error("settings load failed", logger.Error(err), logger.Backend("redis"))
//
// Never pass signing keys, passwords or access tokens to a logger. There is no
// helper for them on purpose.
package logger
