package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/comingsoon/core/branding"
	"github.com/dmitrymomot/comingsoon/core/cookie"
	"github.com/dmitrymomot/comingsoon/core/csrf"
	"github.com/dmitrymomot/comingsoon/core/gate"
	"github.com/dmitrymomot/comingsoon/core/health"
	"github.com/dmitrymomot/comingsoon/core/logger"
	"github.com/dmitrymomot/comingsoon/core/media"
	"github.com/dmitrymomot/comingsoon/core/page"
	"github.com/dmitrymomot/comingsoon/core/preview"
	"github.com/dmitrymomot/comingsoon/core/server"
	"github.com/dmitrymomot/comingsoon/core/settings"
	"github.com/dmitrymomot/comingsoon/core/static"
	"github.com/dmitrymomot/comingsoon/core/upstream"
	"github.com/dmitrymomot/comingsoon/middleware"
	"github.com/dmitrymomot/comingsoon/pkg/token"
)

// App wires the coming-soon gate in front of the site.
type App struct {
	config    Config
	logger    *slog.Logger
	server    *server.Server
	store     settings.Store
	provider  *settings.Provider
	loader    media.Loader
	logos     *branding.Source
	previews  *preview.Service
	site      http.Handler
	handler   http.Handler
	resources *Resources
}

// Option customizes App construction. Options run before backends are opened,
// so injected components replace the configured ones.
type Option func(*App) error

// New builds the application from cfg.
func New(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	if len(cfg.SigningKey) < MinSigningKeyLength {
		return nil, ErrWeakSigningKey
	}

	app := &App{
		config:    cfg,
		logger:    logger.New(logger.ForEnv(cfg.Env, cfg.Name), logger.WithLevelName(cfg.LogLevel)),
		resources: &Resources{},
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if err := app.init(ctx); err != nil {
		_ = app.resources.Close()
		return nil, err
	}
	return app, nil
}

// WithLogger replaces the environment-derived logger.
func WithLogger(l *slog.Logger) Option {
	return func(app *App) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = l
		return nil
	}
}

// WithSettingsStore replaces the configured settings backend.
func WithSettingsStore(store settings.Store) Option {
	return func(app *App) error {
		if store == nil {
			return errors.New("settings store cannot be nil")
		}
		app.store = store
		return nil
	}
}

// WithLogoLoader replaces the configured logo backend.
func WithLogoLoader(loader media.Loader) Option {
	return func(app *App) error {
		if loader == nil {
			return errors.New("logo loader cannot be nil")
		}
		app.loader = loader
		return nil
	}
}

// WithSite sets the handler serving the real site.
func WithSite(h http.Handler) Option {
	return func(app *App) error {
		if h == nil {
			return errors.New("site handler cannot be nil")
		}
		app.site = h
		return nil
	}
}

func (app *App) init(ctx context.Context) error {
	cfg := app.config

	keys, err := gate.DeriveKeys([]byte(cfg.SigningKey))
	if err != nil {
		return err
	}

	cookies, err := cookie.NewFromConfig(cfg.Cookie, []string{keys.CookieSecret()})
	if err != nil {
		return fmt.Errorf("cookie manager: %w", err)
	}

	forms, err := csrf.NewFromConfig(cfg.CSRF, keys.AntiForgery, cookies)
	if err != nil {
		return fmt.Errorf("anti-forgery: %w", err)
	}

	g := gate.New(token.NewCodec(keys.Token), cookies, forms,
		gate.WithConfig(cfg.Gate), gate.WithLogger(app.logger))

	if app.store == nil {
		store, err := OpenSettingsStore(ctx, cfg.StoreConfig, app.logger, app.resources)
		if err != nil {
			return err
		}
		app.store = store
	}
	app.provider = settings.NewProvider(app.store,
		settings.WithCacheTTL(cfg.Settings.CacheTTL), settings.WithLogger(app.logger))

	if app.loader == nil {
		app.loader, err = OpenLogoLoader(ctx, cfg, app.logger, app.resources)
		if err != nil {
			return err
		}
	}
	app.logos = branding.New(app.loader, branding.WithTTL(cfg.LogoCacheTTL), branding.WithLogger(app.logger))

	if cfg.Preview.Secret != "" {
		app.previews, err = preview.New(cfg.Preview)
		if err != nil {
			return err
		}
	}

	if app.site == nil {
		app.site, err = app.buildSite()
		if err != nil {
			return err
		}
	}

	renderer, err := page.New(page.WithLang(cfg.Lang))
	if err != nil {
		return fmt.Errorf("page renderer: %w", err)
	}

	app.handler, err = app.routes(g, cookies, renderer)
	if err != nil {
		return err
	}

	app.server, err = server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
	return err
}

func (app *App) buildSite() (http.Handler, error) {
	switch {
	case app.config.Upstream.URL != "":
		return upstream.New(app.config.Upstream, app.logger)
	case app.config.SiteDir != "":
		return static.Dir(app.config.SiteDir)
	default:
		return http.NotFoundHandler(), nil
	}
}

func (app *App) routes(g *gate.Gate, cookies *cookie.Manager, renderer *page.Renderer) (http.Handler, error) {
	cfg := app.config
	probes := func(r *http.Request) bool {
		return r.URL.Path == "/live" || r.URL.Path == "/ready"
	}

	privilege := middleware.Never
	if app.previews != nil {
		privilege = middleware.NewJWTPrivilege(app.previews)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.ClientIPWithConfig(middleware.ClientIPConfig{TrustProxyHeaders: cfg.TrustProxyHeaders}),
		middleware.LoggingWithConfig(middleware.LoggingConfig{Logger: app.logger, Skip: probes}),
		middleware.SecurityHeadersForEnv(cfg.Env),
		middleware.BodyLimitWithSize(cfg.MaxBodyBytes),
	)
	if app.previews != nil {
		r.Use(middleware.PreviewLink(app.previews, cookies))
	}
	r.Use(middleware.ComingSoon(middleware.ComingSoonConfig{
		Settings:    app.provider,
		Gate:        g,
		Page:        renderer,
		Accent:      app.logos,
		Privilege:   privilege,
		BypassPaths: append([]string{"/live", "/ready"}, cfg.BypassPaths...),
		RetryAfter:  cfg.RetryAfter,
		Logger:      app.logger,
	}))

	r.Method(http.MethodGet, "/live", health.Liveness())
	r.Method(http.MethodGet, "/ready", health.Readiness(app.logger,
		append([]health.Check{health.Named("settings", app.provider.Check)}, app.resources.Checks...)...))
	r.Method(http.MethodGet, middleware.LogoPath, middleware.LogoHandler(app.provider, app.logos, app.logger))

	if cfg.StaticDir != "" {
		assets, err := static.Dir(cfg.StaticDir, static.WithStripPrefix("/static"), static.WithCacheMaxAge(3600))
		if err != nil {
			return nil, fmt.Errorf("static assets: %w", err)
		}
		r.Handle("/static/*", assets)
	}

	r.Handle("/*", app.site)
	return r, nil
}

// Handler returns the root HTTP handler.
func (app *App) Handler() http.Handler { return app.handler }

// Logger returns the application logger.
func (app *App) Logger() *slog.Logger { return app.logger }

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	app.logger.InfoContext(ctx, "starting application",
		logger.Component("app"), slog.String("env", app.config.Env),
		logger.Backend(app.config.Settings.Backend),
		slog.Bool("preview", app.previews != nil))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(app.server.Run(ctx, app.handler))
	return g.Wait()
}

// Close releases backend connections.
func (app *App) Close() error {
	return app.resources.Close()
}
