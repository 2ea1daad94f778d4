package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/comingsoon/core/health"
	"github.com/dmitrymomot/comingsoon/core/logger"
	"github.com/dmitrymomot/comingsoon/core/media"
	"github.com/dmitrymomot/comingsoon/core/settings"
	"github.com/dmitrymomot/comingsoon/integration/database/pg"
	"github.com/dmitrymomot/comingsoon/integration/database/redis"
	"github.com/dmitrymomot/comingsoon/integration/storage/s3"
)

// Resources are opened backends plus their readiness checks and cleanup.
type Resources struct {
	Checks  []health.Check
	closers []func() error
}

// Close releases every opened backend in reverse order.
func (r *Resources) Close() error {
	var firstErr error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.closers = nil
	return firstErr
}

func (r *Resources) onClose(fn func() error) { r.closers = append(r.closers, fn) }

// OpenSettingsStore connects the backend named by cfg.Settings.Backend.
// Postgres migrations are applied before the store is returned.
func OpenSettingsStore(ctx context.Context, cfg StoreConfig, log *slog.Logger, res *Resources) (settings.Store, error) {
	var b settings.Backends

	switch cfg.Settings.Backend {
	case settings.BackendRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		res.onClose(client.Close)
		res.Checks = append(res.Checks, health.Named("redis", redis.Healthcheck(client)))
		b.Redis = client

	case settings.BackendPostgres:
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		res.onClose(func() error { pool.Close(); return nil })
		if err := pg.Migrate(ctx, pool, cfg.Postgres, settings.Migrations, settings.MigrationsDir, log); err != nil {
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		res.Checks = append(res.Checks, health.Named("postgres", pg.Healthcheck(pool)))
		b.Postgres = pool
	}

	store, err := settings.NewStore(cfg.Settings, b)
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "settings store ready",
		logger.Component("app"), logger.Backend(cfg.Settings.Backend))
	return store, nil
}

// OpenLogoLoader opens the logo backend. A missing local directory is not
// fatal: the page then renders without a logo.
func OpenLogoLoader(ctx context.Context, cfg Config, log *slog.Logger, res *Resources) (media.Loader, error) {
	switch cfg.LogoBackend {
	case "", LogoBackendNone:
		return nil, nil

	case LogoBackendLocal:
		loader, err := media.NewLocalLoader(cfg.LogoDir, cfg.LogoMaxSize)
		if err != nil {
			log.WarnContext(ctx, "logo directory unavailable, logos disabled",
				logger.Component("app"), logger.Key("dir", cfg.LogoDir), logger.Error(err))
			return nil, nil
		}
		res.onClose(loader.Close)
		return loader, nil

	case LogoBackendS3:
		loader, err := s3.New(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("open s3 logo loader: %w", err)
		}
		res.Checks = append(res.Checks, health.Named("s3", loader.Healthcheck()))
		return loader, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogoBackend, cfg.LogoBackend)
	}
}
