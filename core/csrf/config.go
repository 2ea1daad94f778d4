package csrf

import "time"

// Config holds anti-forgery settings loaded from the environment.
type Config struct {
	CookieName string        `env:"CSRF_COOKIE_NAME" envDefault:"comingsoon_seed"`
	TTL        time.Duration `env:"CSRF_TTL" envDefault:"12h"`
}

// DefaultConfig returns the default anti-forgery settings.
func DefaultConfig() Config {
	return Config{
		CookieName: "comingsoon_seed",
		TTL:        12 * time.Hour,
	}
}

// Option configures a Protector.
type Option func(*Protector)

// WithCookieName overrides the seed cookie name.
func WithCookieName(name string) Option {
	return func(p *Protector) {
		if name != "" {
			p.cookieName = name
		}
	}
}

// WithTTL sets how long an issued token stays valid.
func WithTTL(ttl time.Duration) Option {
	return func(p *Protector) {
		if ttl > 0 {
			p.ttl = ttl
		}
	}
}

// WithClock replaces time.Now. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(p *Protector) {
		if now != nil {
			p.now = now
		}
	}
}

// NewFromConfig creates a Protector from configuration.
func NewFromConfig(cfg Config, key []byte, cookies CookieStore, opts ...Option) (*Protector, error) {
	return New(key, cookies, append([]Option{WithCookieName(cfg.CookieName), WithTTL(cfg.TTL)}, opts...)...)
}
