package server

import (
	"crypto/tls"
	"log/slog"
	"time"
)

// Option configures server behavior.
type Option func(*Server)

// WithTLS configures TLS settings for HTTPS.
func WithTLS(config *tls.Config) Option {
	return func(s *Server) { s.tlsConfig = config }
}

// WithLogger sets a custom logger for server operations.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithShutdownTimeout sets the maximum time to wait for graceful shutdown.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) { s.shutdown = timeout }
}

// WithReadTimeout sets the maximum duration for reading the entire request.
func WithReadTimeout(timeout time.Duration) Option {
	return func(s *Server) { s.readTimeout = timeout }
}

// WithReadHeaderTimeout sets the maximum duration for reading request headers.
func WithReadHeaderTimeout(timeout time.Duration) Option {
	return func(s *Server) { s.readHeaderTimeout = timeout }
}

// WithWriteTimeout sets the maximum duration before timing out writes of the response.
func WithWriteTimeout(timeout time.Duration) Option {
	return func(s *Server) { s.writeTimeout = timeout }
}

// WithIdleTimeout sets the keep-alive idle timeout.
func WithIdleTimeout(timeout time.Duration) Option {
	return func(s *Server) { s.idleTimeout = timeout }
}

// WithMaxHeaderBytes limits the size of request headers.
func WithMaxHeaderBytes(n int) Option {
	return func(s *Server) { s.maxHeaderBytes = n }
}
