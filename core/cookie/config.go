package cookie

import (
	"net/http"
	"strings"
)

// Config provides environment-based configuration for the cookie manager.
type Config struct {
	Secrets  string        `env:"COOKIE_SECRETS" envDefault:""`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // SameSiteLaxMode
	MaxSize  int           `env:"COOKIE_MAX_SIZE" envDefault:"4096"`
	// AutoSecure sets the Secure flag for requests that arrived over TLS.
	AutoSecure bool `env:"COOKIE_AUTO_SECURE" envDefault:"true"`
}

// DefaultConfig returns a Config with secure defaults.
func DefaultConfig() Config {
	return Config{
		Path:       "/",
		HttpOnly:   true,
		SameSite:   http.SameSiteLaxMode,
		MaxSize:    MaxCookieSize,
		AutoSecure: true,
	}
}

// parseSecrets splits comma-separated secrets for key rotation support.
func (c Config) parseSecrets() []string {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}

// NewFromConfig creates a Manager from configuration. extraSecrets are appended
// after the configured ones, so an application can pass a derived key when
// COOKIE_SECRETS is empty. Options override config values.
func NewFromConfig(cfg Config, extraSecrets []string, opts ...Option) (*Manager, error) {
	secrets := append(cfg.parseSecrets(), extraSecrets...)

	configOpts := make([]Option, 0, 7)
	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(true))
	}
	configOpts = append(configOpts, WithHTTPOnly(cfg.HttpOnly), WithAutoSecure(cfg.AutoSecure))
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}
	configOpts = append(configOpts, opts...)

	m, err := New(secrets, configOpts...)
	if err != nil {
		return nil, err
	}
	if cfg.MaxSize > 0 {
		m.maxSize = cfg.MaxSize
	}
	return m, nil
}
