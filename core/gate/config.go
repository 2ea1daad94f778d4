package gate

import (
	"log/slog"
	"time"
)

const (
	// Action scopes anti-forgery tokens to the challenge form.
	Action = "challenge-entry"

	FieldAntiForgery = "_csrf"
	FieldPassword    = "comingsoon_password"
	FieldSubmit      = "comingsoon_submit"
)

// Config holds the access cookie settings.
type Config struct {
	CookieName   string        `env:"GATE_COOKIE_NAME" envDefault:"comingsoon_access"`
	CookiePath   string        `env:"GATE_COOKIE_PATH" envDefault:"/"`
	TokenTTL     time.Duration `env:"GATE_TOKEN_TTL" envDefault:"168h"`
	MaxFormBytes int64         `env:"GATE_MAX_FORM_BYTES" envDefault:"65536"`
}

// DefaultConfig returns the default access cookie settings.
func DefaultConfig() Config {
	return Config{
		CookieName:   "comingsoon_access",
		CookiePath:   "/",
		TokenTTL:     7 * 24 * time.Hour,
		MaxFormBytes: 64 << 10,
	}
}

// Option configures a Gate.
type Option func(*Gate)

// WithConfig replaces the gate configuration. Zero fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(g *Gate) {
		if cfg.CookieName != "" {
			g.cfg.CookieName = cfg.CookieName
		}
		if cfg.CookiePath != "" {
			g.cfg.CookiePath = cfg.CookiePath
		}
		if cfg.TokenTTL > 0 {
			g.cfg.TokenTTL = cfg.TokenTTL
		}
		if cfg.MaxFormBytes > 0 {
			g.cfg.MaxFormBytes = cfg.MaxFormBytes
		}
	}
}

// WithLogger sets the logger used by Handle.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.logger = l
		}
	}
}
