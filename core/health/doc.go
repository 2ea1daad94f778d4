// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//
// Usage:
//
//	r.Method(http.MethodGet, "/live", health.Liveness())
//	r.Method(http.MethodGet, "/ready", health.Readiness(log,
//		health.Named("settings", provider.Check),
//		health.Named("redis", redis.Healthcheck(client)),
//	))
//
// Dependency checks must follow func(context.Context) error signature.
// Both handlers answer with no-cache headers so probes are never served from a cache.
package health
