package server

import (
	"fmt"
	"time"
)

// Config holds server configuration with environment variable support.
type Config struct {
	// Server address
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Timeouts
	ReadTimeout       time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	ReadHeaderTimeout time.Duration `env:"SERVER_READ_HEADER_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"45s"`
	IdleTimeout       time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Header limits
	MaxHeaderBytes int `env:"SERVER_MAX_HEADER_BYTES" envDefault:"1048576"` // 1MB

	// TLS Configuration (optional)
	TLSCertFile string `env:"SERVER_TLS_CERT_FILE"`
	TLSKeyFile  string `env:"SERVER_TLS_KEY_FILE"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:              ":8080",
		ReadTimeout:       DefaultReadTimeout,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
		WriteTimeout:      DefaultWriteTimeout,
		IdleTimeout:       DefaultIdleTimeout,
		ShutdownTimeout:   DefaultShutdownTimeout,
		MaxHeaderBytes:    DefaultMaxHeaderBytes,
	}
}

// NewFromConfig creates a Server from configuration.
// Additional options can override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddress
	}

	configOpts := make([]Option, 0, 8)
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.ReadHeaderTimeout > 0 {
		configOpts = append(configOpts, WithReadHeaderTimeout(cfg.ReadHeaderTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	if cfg.MaxHeaderBytes > 0 {
		configOpts = append(configOpts, WithMaxHeaderBytes(cfg.MaxHeaderBytes))
	}

	if cfg.TLSCertFile != "" || cfg.TLSKeyFile != "" {
		tlsConfig, err := loadTLSFromFiles(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load TLS configuration from files %s, %s: %w",
				cfg.TLSCertFile, cfg.TLSKeyFile, err)
		}
		configOpts = append(configOpts, WithTLS(tlsConfig))
	}

	configOpts = append(configOpts, opts...)

	return New(cfg.Addr, configOpts...), nil
}
