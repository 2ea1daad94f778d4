// Package middleware provides the HTTP middleware of the coming-soon service.
// Every middleware has the chi-compatible shape func(http.Handler) http.Handler.
//
// # Architecture
//
// Middleware follow a consistent pattern:
//   - Configuration structs for customization
//   - Default constructors for common use cases
//   - WithConfig constructors for advanced configuration
//   - Context helpers for retrieving stored values
//
// # Coming-soon mode
//
// ComingSoon serves the coming-soon page with status 503 while the site is
// enabled. Privileged callers (see PrivilegeChecker and JWTPrivilege), bypass
// paths and visitors that unlocked the site with the password reach the
// wrapped handler.
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID(), middleware.ClientIP(), middleware.LoggingWithLogger(log))
//	r.Use(middleware.PreviewLink(previews, cookies))
//	r.Use(middleware.ComingSoon(middleware.ComingSoonConfig{
//		Settings:    provider,
//		Gate:        g,
//		Page:        renderer,
//		Accent:      logos,
//		Privilege:   middleware.NewJWTPrivilege(previews),
//		BypassPaths: []string{"/live", "/ready", "/static"},
//	}))
//	r.Method(http.MethodGet, middleware.LogoPath, middleware.LogoHandler(provider, logos, log))
//
// # Request ID and client IP
//
// RequestID stores a per-request identifier in the context and the X-Request-ID
// header; RequestIDExtractor feeds it into every log record. ClientIP resolves
// the caller address, optionally trusting proxy headers.
//
// # Logging
//
// Logging writes one record per request. Bodies are never logged and
// sensitive headers are redacted. The 503 coming-soon status is logged at the
// configured level instead of error.
//
// # Security headers and body limits
//
// SecurityHeaders applies one of the preset header sets; BodyLimit rejects
// oversized requests before they reach the handler.
package middleware
