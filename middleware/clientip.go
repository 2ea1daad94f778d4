package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// clientIPContextKey is used as a key for storing client IP in request context.
type clientIPContextKey struct{}

// ClientIPConfig configures the client IP extraction middleware.
type ClientIPConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// TrustProxyHeaders enables reading CF-Connecting-IP, X-Real-IP and X-Forwarded-For.
	// Enable only behind a proxy that overwrites these headers.
	TrustProxyHeaders bool
	// HeaderName specifies the response header name for the client IP (default: "X-Client-IP")
	HeaderName string
	// StoreInHeader determines whether to include the IP in response headers
	StoreInHeader bool
}

// ClientIP creates a client IP middleware that trusts proxy headers.
func ClientIP() func(http.Handler) http.Handler {
	return ClientIPWithConfig(ClientIPConfig{TrustProxyHeaders: true})
}

// ClientIPWithConfig creates a client IP extraction middleware with custom configuration.
func ClientIPWithConfig(cfg ClientIPConfig) func(http.Handler) http.Handler {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Client-IP"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			ip := ExtractIP(r, cfg.TrustProxyHeaders)
			if cfg.StoreInHeader && ip != "" {
				w.Header().Set(cfg.HeaderName, ip)
			}

			ctx := context.WithValue(r.Context(), clientIPContextKey{}, ip)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientIP retrieves the client IP address from ctx.
func GetClientIP(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(clientIPContextKey{}).(string)
	return ip, ok && ip != ""
}

// ExtractIP returns the caller address. With trustProxy it prefers
// CF-Connecting-IP, then X-Real-IP, then the first valid X-Forwarded-For entry.
func ExtractIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if ip := parseIP(r.Header.Get("CF-Connecting-IP")); ip != "" {
			return ip
		}
		if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
		for part := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
