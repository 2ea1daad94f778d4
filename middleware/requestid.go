package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/comingsoon/core/logger"
)

// requestIDContextKey is used as a key for storing request ID in request context.
type requestIDContextKey struct{}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to use an existing request ID from the incoming request
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration.
func RequestID() func(http.Handler) http.Handler {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom configuration.
// The ID is stored in the request context and echoed in the response header.
func RequestIDWithConfig(cfg RequestIDConfig) func(http.Handler) http.Handler {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}

	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			var requestID string
			if cfg.UseExisting {
				requestID = validRequestID(r.Header.Get(cfg.HeaderName))
			}
			if requestID == "" {
				requestID = cfg.Generator()
			}

			w.Header().Set(cfg.HeaderName, requestID)
			ctx := context.WithValue(r.Context(), requestIDContextKey{}, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID retrieves the request ID from ctx.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok && id != ""
}

// RequestIDExtractor adds the request ID to every record logged with a request context.
// Pass it to logger.WithContextExtractors.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := GetRequestID(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.RequestID(id), true
}

// validRequestID accepts short printable IDs only, so a client cannot inject
// arbitrary content into logs and response headers.
func validRequestID(id string) string {
	if id == "" || len(id) > 128 {
		return ""
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c < 0x21 || c > 0x7e {
			return ""
		}
	}
	return id
}
