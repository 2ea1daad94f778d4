package settings

import (
	"fmt"
	"time"
)

// Backend names accepted by NewStore.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config selects and tunes the settings backend.
type Config struct {
	Backend  string        `env:"SETTINGS_BACKEND" envDefault:"file"`
	File     string        `env:"SETTINGS_FILE" envDefault:"data/settings.toml"`
	RedisKey string        `env:"SETTINGS_REDIS_KEY" envDefault:"comingsoon:settings"`
	CacheTTL time.Duration `env:"SETTINGS_CACHE_TTL" envDefault:"5s"`
}

// DefaultConfig returns a file-backed configuration.
func DefaultConfig() Config {
	return Config{
		Backend:  BackendFile,
		File:     "data/settings.toml",
		RedisKey: DefaultRedisKey,
		CacheTTL: 5 * time.Second,
	}
}

// Backends carries the connected clients a store may need.
type Backends struct {
	Redis    RedisClient
	Postgres Querier
}

// NewStore builds the store named by cfg.Backend.
func NewStore(cfg Config, b Backends) (Store, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case "", BackendFile:
		return NewFileStore(cfg.File), nil
	case BackendRedis:
		store, err := NewRedisStore(b.Redis, cfg.RedisKey)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendPostgres:
		store, err := NewPostgresStore(b.Postgres)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
