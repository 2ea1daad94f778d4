package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/comingsoon/core/branding"
	"github.com/dmitrymomot/comingsoon/core/gate"
	"github.com/dmitrymomot/comingsoon/core/logger"
	"github.com/dmitrymomot/comingsoon/core/page"
	"github.com/dmitrymomot/comingsoon/core/response"
	"github.com/dmitrymomot/comingsoon/core/settings"
	"github.com/dmitrymomot/comingsoon/pkg/accent"
)

// LogoPath is where the logo handler is mounted.
const LogoPath = "/logo"

// SettingsSource returns the effective settings.
type SettingsSource interface {
	Current(ctx context.Context) settings.Settings
}

// AccentSource derives the page accent from a logo key.
type AccentSource interface {
	Accent(ctx context.Context, key string) accent.Accent
}

// Gatekeeper evaluates the password gate for a request.
type Gatekeeper interface {
	Handle(w http.ResponseWriter, r *http.Request, secret string) gate.Result
	ChallengeToken(w http.ResponseWriter, r *http.Request) (string, error)
}

// ComingSoonConfig configures the coming-soon middleware.
type ComingSoonConfig struct {
	// Settings supplies the current site settings (required)
	Settings SettingsSource
	// Gate evaluates the password challenge (required)
	Gate Gatekeeper
	// Page renders the coming-soon page (required)
	Page *page.Renderer
	// Accent derives the accent color (default: the built-in accent)
	Accent AccentSource
	// Privilege lets administrators see the site (default: nobody)
	Privilege PrivilegeChecker
	// BypassPaths are path prefixes always served by the site (health probes, assets).
	// LogoPath is always bypassed.
	BypassPaths []string
	// RetryAfter is sent with the 503 page (default: 1h)
	RetryAfter time.Duration
	// Logger is used for rendering failures (default: slog.Default())
	Logger *slog.Logger
}

// ComingSoon replaces every non-bypassed response with the coming-soon page
// while the site is enabled, unless the caller is privileged or has unlocked
// the site with the password.
func ComingSoon(cfg ComingSoonConfig) func(http.Handler) http.Handler {
	if cfg.Privilege == nil {
		cfg.Privilege = Never
	}
	if cfg.RetryAfter <= 0 {
		cfg.RetryAfter = time.Hour
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == LogoPath || bypassed(r.URL.Path, cfg.BypassPaths) {
				next.ServeHTTP(w, r)
				return
			}

			s := cfg.Settings.Current(r.Context())
			if !s.Enabled || cfg.Privilege.IsPrivileged(r) {
				next.ServeHTTP(w, r)
				return
			}

			res := cfg.Gate.Handle(w, r, s.Password)
			if res.Redirect {
				response.Render(w, r, cfg.Logger, response.RedirectSeeOther(r.URL.RequestURI()))
				return
			}
			// A disabled gate means no password is set: everyone gets the page.
			if res.State == gate.Unlocked {
				next.ServeHTTP(w, r)
				return
			}

			d := page.Data{
				Title:      s.Title,
				Message:    s.Message,
				Accent:     accent.DefaultAccent(),
				FormAction: r.URL.RequestURI(),
			}
			if s.LogoKey != "" {
				d.LogoURL = LogoPath
				if cfg.Accent != nil {
					d.Accent = cfg.Accent.Accent(r.Context(), s.LogoKey)
				}
			}
			if res.State == gate.Locked {
				d.Challenge = true
				d.Error = gate.Message(res.Error)
				tok, err := cfg.Gate.ChallengeToken(w, r)
				if err != nil {
					cfg.Logger.ErrorContext(r.Context(), "failed to issue challenge token",
						logger.Component("comingsoon"), logger.Error(err))
				}
				d.AntiForgeryToken = tok
			}

			resp := response.WithRetryAfter(response.WithNoCache(
				cfg.Page.Response(d, http.StatusServiceUnavailable)), cfg.RetryAfter)
			resp = response.WithHeaders(resp, map[string]string{"Content-Security-Policy": PagePolicy})
			response.Render(w, r, cfg.Logger, resp)
		})
	}
}

// LogoLoader loads logo bytes by key.
type LogoLoader interface {
	Logo(ctx context.Context, key string) (branding.Logo, error)
}

// LogoHandler serves the configured logo. It answers 404 when no logo is set
// or it cannot be loaded.
func LogoHandler(src SettingsSource, logos LogoLoader, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return response.Handler(log, func(r *http.Request) response.Response {
		key := src.Current(r.Context()).LogoKey
		if key == "" {
			return response.Status(http.StatusNotFound)
		}

		logo, err := logos.Logo(r.Context(), key)
		if err != nil {
			log.WarnContext(r.Context(), "failed to load logo",
				logger.Component("comingsoon"), logger.Key("logo_key", key), logger.Error(err))
			return response.Status(http.StatusNotFound)
		}

		headers := map[string]string{
			"Cache-Control":          "public, max-age=300",
			"X-Content-Type-Options": "nosniff",
		}
		if logo.ContentType == "image/svg+xml" {
			headers["Content-Security-Policy"] = "default-src 'none'; style-src 'unsafe-inline'; sandbox"
		}
		return response.WithHeaders(response.BytesWithStatus(logo.Data, logo.ContentType, http.StatusOK), headers)
	})
}

func bypassed(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		if path == p || strings.HasPrefix(path, strings.TrimSuffix(p, "/")+"/") {
			return true
		}
	}
	return false
}
