package branding

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/comingsoon/core/logger"
	"github.com/dmitrymomot/comingsoon/core/media"
	"github.com/dmitrymomot/comingsoon/pkg/accent"
)

// DefaultTTL is how long a loaded logo and its accent are reused.
const DefaultTTL = 10 * time.Minute

// Logo is a loaded logo with its derived accent.
type Logo struct {
	Key         string
	Data        []byte
	ContentType string
	Accent      accent.Accent
}

type entry struct {
	logo    Logo
	expires time.Time
}

// Source loads logos through a media.Loader and caches them per key.
// Concurrent misses for one key share a single load. Safe for concurrent use.
type Source struct {
	loader media.Loader
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]entry
}

// Option configures a Source.
type Option func(*Source)

// WithTTL sets the cache lifetime. Non-positive values disable caching.
func WithTTL(ttl time.Duration) Option {
	return func(s *Source) { s.ttl = ttl }
}

// WithLogger sets the logger for load failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Source) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Source) { s.now = now }
}

// New creates a Source. A nil loader yields a Source that never has a logo.
func New(loader media.Loader, opts ...Option) *Source {
	s := &Source{
		loader: loader,
		ttl:    DefaultTTL,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
		cache:  make(map[string]entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Logo returns the logo stored under key.
func (s *Source) Logo(ctx context.Context, key string) (Logo, error) {
	if key == "" || s.loader == nil {
		return Logo{}, media.ErrFileNotFound
	}

	if logo, ok := s.cached(key); ok {
		return logo, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		data, err := s.loader.Load(ctx, key)
		if err != nil {
			return Logo{}, err
		}
		logo := Logo{
			Key:         key,
			Data:        data,
			ContentType: media.ContentType(data),
			Accent:      accent.Derive(data),
		}
		s.store(logo)
		return logo, nil
	})
	if err != nil {
		return Logo{}, err
	}
	return v.(Logo), nil
}

// Accent returns the accent derived from the logo under key. Any failure is
// logged and yields the default accent.
func (s *Source) Accent(ctx context.Context, key string) accent.Accent {
	if key == "" || s.loader == nil {
		return accent.DefaultAccent()
	}
	logo, err := s.Logo(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "logo unavailable, using default accent",
			logger.Component("branding"),
			logger.Key("logo_key", key),
			logger.Error(err),
		)
		return accent.DefaultAccent()
	}
	return logo.Accent
}

// Invalidate drops every cached logo.
func (s *Source) Invalidate() {
	s.mu.Lock()
	clear(s.cache)
	s.mu.Unlock()
}

func (s *Source) cached(key string) (Logo, bool) {
	s.mu.RLock()
	e, ok := s.cache[key]
	s.mu.RUnlock()
	if !ok || !s.now().Before(e.expires) {
		return Logo{}, false
	}
	return e.logo, true
}

func (s *Source) store(logo Logo) {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	s.cache[logo.Key] = entry{logo: logo, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()
}
