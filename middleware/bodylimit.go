package middleware

import (
	"fmt"
	"mime"
	"net/http"
)

// Common size constants for convenience
const (
	KB int64 = 1024
	MB       = 1024 * KB
)

// BodyLimitConfig configures the request body limit middleware.
type BodyLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool

	// MaxSize is the maximum allowed size in bytes (default: 1MB)
	MaxSize int64

	// ContentTypeLimit allows setting different limits per content type
	// Example: {"application/x-www-form-urlencoded": 64 * KB}
	ContentTypeLimit map[string]int64

	// ErrorHandler handles requests whose declared Content-Length exceeds the limit
	ErrorHandler func(w http.ResponseWriter, r *http.Request, contentLength, maxSize int64)
}

// BodyLimit creates a body limit middleware with default configuration (1MB limit).
func BodyLimit() func(http.Handler) http.Handler {
	return BodyLimitWithConfig(BodyLimitConfig{})
}

// BodyLimitWithSize creates a body limit middleware with a specified size limit.
func BodyLimitWithSize(maxSize int64) func(http.Handler) http.Handler {
	return BodyLimitWithConfig(BodyLimitConfig{MaxSize: maxSize})
}

// BodyLimitWithConfig creates a body limit middleware with custom configuration.
// Requests declaring a larger Content-Length are rejected up front; streamed
// bodies are capped with http.MaxBytesReader.
func BodyLimitWithConfig(cfg BodyLimitConfig) func(http.Handler) http.Handler {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = MB
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(w http.ResponseWriter, r *http.Request, contentLength, maxSize int64) {
			message := fmt.Sprintf("Request body too large. Maximum allowed: %s", formatBytes(maxSize))
			http.Error(w, message, http.StatusRequestEntityTooLarge)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) || r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			maxSize := cfg.MaxSize
			if cfg.ContentTypeLimit != nil {
				if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil {
					if limit, ok := cfg.ContentTypeLimit[mediaType]; ok {
						maxSize = limit
					}
				}
			}

			if r.ContentLength > maxSize {
				cfg.ErrorHandler(w, r, r.ContentLength, maxSize)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxSize)
			next.ServeHTTP(w, r)
		})
	}
}

// formatBytes formats bytes into a human-readable string
func formatBytes(bytes int64) string {
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}
