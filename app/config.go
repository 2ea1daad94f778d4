package app

import (
	"time"

	"github.com/dmitrymomot/comingsoon/core/config"
	"github.com/dmitrymomot/comingsoon/core/cookie"
	"github.com/dmitrymomot/comingsoon/core/csrf"
	"github.com/dmitrymomot/comingsoon/core/gate"
	"github.com/dmitrymomot/comingsoon/core/preview"
	"github.com/dmitrymomot/comingsoon/core/server"
	"github.com/dmitrymomot/comingsoon/core/settings"
	"github.com/dmitrymomot/comingsoon/core/upstream"
	"github.com/dmitrymomot/comingsoon/integration/database/pg"
	"github.com/dmitrymomot/comingsoon/integration/database/redis"
	"github.com/dmitrymomot/comingsoon/integration/storage/s3"
)

// Logo backends.
const (
	LogoBackendNone  = "none"
	LogoBackendLocal = "local"
	LogoBackendS3    = "s3"
)

// MinSigningKeyLength is the shortest accepted APP_SIGNING_KEY.
const MinSigningKeyLength = 32

// StoreConfig selects the settings backend and its connections.
type StoreConfig struct {
	Settings settings.Config
	Redis    redis.Config
	Postgres pg.Config
}

// LoadStoreConfig reads only the settings backend configuration.
func LoadStoreConfig() (StoreConfig, error) {
	var cfg StoreConfig
	if err := config.Load(&cfg); err != nil {
		return StoreConfig{}, err
	}
	return cfg, nil
}

// Config is the full server configuration.
type Config struct {
	StoreConfig

	Server   server.Config
	Cookie   cookie.Config
	CSRF     csrf.Config
	Gate     gate.Config
	Preview  preview.Config
	S3       s3.Config
	Upstream upstream.Config

	Name       string `env:"APP_NAME" envDefault:"comingsoon"`
	Env        string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL"` // empty keeps the APP_ENV default
	SigningKey string `env:"APP_SIGNING_KEY,required"`
	Lang       string `env:"APP_LANG" envDefault:"en"`

	LogoBackend  string        `env:"LOGO_BACKEND" envDefault:"local"`
	LogoDir      string        `env:"LOGO_DIR" envDefault:"data/media"`
	LogoMaxSize  int64         `env:"LOGO_MAX_SIZE" envDefault:"10485760"`
	LogoCacheTTL time.Duration `env:"LOGO_CACHE_TTL" envDefault:"10m"`

	// SiteDir is served as the site when no upstream is configured.
	SiteDir   string `env:"SITE_DIR"`
	StaticDir string `env:"STATIC_DIR"`

	BypassPaths       []string      `env:"BYPASS_PATHS" envSeparator:"," envDefault:"/static"`
	RetryAfter        time.Duration `env:"RETRY_AFTER" envDefault:"1h"`
	TrustProxyHeaders bool          `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
	MaxBodyBytes      int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

// LoadConfig reads Config from the environment (and .env when present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultConfig returns the defaults of every section with in-memory settings
// and no logo backend. SigningKey is left empty.
func DefaultConfig() Config {
	settingsCfg := settings.DefaultConfig()
	settingsCfg.Backend = settings.BackendMemory

	return Config{
		StoreConfig:  StoreConfig{Settings: settingsCfg},
		Server:       server.DefaultConfig(),
		Cookie:       cookie.DefaultConfig(),
		CSRF:         csrf.DefaultConfig(),
		Gate:         gate.DefaultConfig(),
		Preview:      preview.Config{TTL: 24 * time.Hour},
		Name:         "comingsoon",
		Env:          "development",
		Lang:         "en",
		LogoBackend:  LogoBackendNone,
		LogoMaxSize:  10 << 20,
		LogoCacheTTL: 10 * time.Minute,
		BypassPaths:  []string{"/static"},
		RetryAfter:   time.Hour,
		MaxBodyBytes: 1 << 20,
	}
}
