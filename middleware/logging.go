package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/dmitrymomot/comingsoon/core/logger"
)

// LoggingConfig configures the request logging middleware.
// Request bodies are never logged: they may carry the site password.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for completed requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// LogHeaders enables logging of request/response headers (default: false)
	LogHeaders bool

	// SensitiveHeaders is a list of header names to redact (default: common auth headers)
	SensitiveHeaders []string

	// QuietStatuses are logged at LogLevel even when >= 400 (default: 503,
	// which is the expected status of the coming-soon page)
	QuietStatuses []int

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging
	Component string
}

// Logging creates a request logging middleware with default configuration.
func Logging() func(http.Handler) http.Handler {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging middleware with custom configuration.
func LoggingWithConfig(cfg LoggingConfig) func(http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.SensitiveHeaders == nil {
		cfg.SensitiveHeaders = []string{
			"Authorization",
			"Cookie",
			"Set-Cookie",
			"X-Api-Key",
			"X-Auth-Token",
			"X-Csrf-Token",
		}
	}

	if cfg.QuietStatuses == nil {
		cfg.QuietStatuses = []int{http.StatusServiceUnavailable}
	}

	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}

	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(wrapped.statusCode),
				slog.Int64("bytes", wrapped.size),
				logger.Latency(duration),
				logger.UserAgent(r.UserAgent()),
			}

			if ip, ok := GetClientIP(r.Context()); ok {
				attrs = append(attrs, logger.ClientIP(ip))
			}

			if cfg.LogHeaders {
				attrs = append(attrs,
					slog.Any("request_headers", redactHeaders(r.Header, cfg.SensitiveHeaders)),
					slog.Any("response_headers", redactHeaders(w.Header(), cfg.SensitiveHeaders)),
				)
			}

			level := cfg.LogLevel
			switch {
			case slices.Contains(cfg.QuietStatuses, wrapped.statusCode):
			case wrapped.statusCode >= 500:
				level = slog.LevelError
			case wrapped.statusCode >= 400:
				level = slog.LevelWarn
			case duration > cfg.SlowRequestThreshold:
				level = slog.LevelWarn
				attrs = append(attrs, slog.Bool("slow_request", true))
			}

			cfg.Logger.LogAttrs(r.Context(), level, "HTTP request completed", attrs...)
		})
	}
}

func redactHeaders(h http.Header, sensitive []string) map[string]any {
	headers := make(map[string]any, len(h))
	for key, values := range h {
		switch {
		case slices.ContainsFunc(sensitive, func(s string) bool { return http.CanonicalHeaderKey(s) == key }):
			headers[key] = "[REDACTED]"
		case len(values) == 1:
			headers[key] = values[0]
		default:
			headers[key] = values
		}
	}
	return headers
}

// responseWriter wraps http.ResponseWriter to capture response details
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	size          int64
	headerWritten bool
}

// WriteHeader captures the status code
func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = statusCode
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(statusCode)
}

// Write captures the response size
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
