package settings

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/comingsoon/core/logger"
)

// Provider serves settings to request handlers. It caches the last loaded value
// for the configured TTL and keeps serving the last good value while the
// backend fails. Without any good value it serves Defaults.
type Provider struct {
	store  Store
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time

	mu       sync.Mutex
	cached   Settings
	loadedAt time.Time
	hasValue bool
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithCacheTTL sets how long a loaded value is reused. Zero disables caching.
func WithCacheTTL(ttl time.Duration) ProviderOption {
	return func(p *Provider) {
		p.ttl = ttl
	}
}

// WithLogger sets the logger for backend failures.
func WithLogger(l *slog.Logger) ProviderOption {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ProviderOption {
	return func(p *Provider) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProvider wraps store.
func NewProvider(store Store, opts ...ProviderOption) *Provider {
	p := &Provider{
		store:  store,
		ttl:    5 * time.Second,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Current returns the settings to use for this request. It never fails.
func (p *Provider) Current(ctx context.Context) Settings {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.hasValue && p.ttl > 0 && now.Sub(p.loadedAt) < p.ttl {
		return p.cached
	}

	s, err := p.store.Load(ctx)
	switch {
	case err == nil:
		s = Sanitize(s)
	case errors.Is(err, ErrNotFound):
		s = Defaults()
	default:
		p.logger.WarnContext(ctx, "settings backend unavailable, serving previous settings",
			logger.Component("settings"), logger.Error(err))
		if p.hasValue {
			p.loadedAt = now
			return p.cached
		}
		return Defaults()
	}

	p.cached = s
	p.loadedAt = now
	p.hasValue = true
	return s
}

// Invalidate drops the cached value.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hasValue = false
}

// Check reports whether the backend answers. Missing settings are not an error.
func (p *Provider) Check(ctx context.Context) error {
	if _, err := p.store.Load(ctx); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}
