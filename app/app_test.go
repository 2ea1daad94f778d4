package app_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/comingsoon/app"
	"github.com/dmitrymomot/comingsoon/core/media"
	"github.com/dmitrymomot/comingsoon/core/preview"
	"github.com/dmitrymomot/comingsoon/core/settings"
	"github.com/dmitrymomot/comingsoon/middleware"
)

const signingKey = "0123456789abcdef0123456789abcdef"

type logoMap map[string][]byte

func (m logoMap) Load(_ context.Context, key string) ([]byte, error) {
	if b, ok := m[key]; ok {
		return b, nil
	}
	return nil, media.ErrFileNotFound
}

func newApp(t *testing.T, s settings.Settings, mutate func(*app.Config)) *app.App {
	t.Helper()

	cfg := app.DefaultConfig()
	cfg.SigningKey = signingKey
	if mutate != nil {
		mutate(&cfg)
	}

	store := settings.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), s))

	site := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("site:" + r.URL.Path))
	})

	a, err := app.New(context.Background(), cfg,
		app.WithLogger(slog.New(slog.DiscardHandler)),
		app.WithSettingsStore(store),
		app.WithLogoLoader(logoMap{"logo.png": []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")}),
		app.WithSite(site),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func serve(a *app.App, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	return w
}

func TestNewRejectsWeakKey(t *testing.T) {
	t.Parallel()

	cfg := app.DefaultConfig()
	cfg.SigningKey = "short"
	_, err := app.New(context.Background(), cfg)
	assert.ErrorIs(t, err, app.ErrWeakSigningKey)
}

func TestNewRejectsUnknownLogoBackend(t *testing.T) {
	t.Parallel()

	cfg := app.DefaultConfig()
	cfg.SigningKey = signingKey
	cfg.LogoBackend = "ftp"
	_, err := app.New(context.Background(), cfg, app.WithLogger(slog.New(slog.DiscardHandler)))
	assert.ErrorIs(t, err, app.ErrUnknownLogoBackend)
}

func TestAppDisabledServesSite(t *testing.T) {
	t.Parallel()

	a := newApp(t, settings.Settings{Enabled: false, Title: "Soon"}, nil)
	w := serve(a, httptest.NewRequest(http.MethodGet, "/pricing", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "site:/pricing", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestAppEnabledServesComingSoonPage(t *testing.T) {
	t.Parallel()

	a := newApp(t, settings.Settings{Enabled: true, Title: "Almost there", Message: "Back *soon*", LogoKey: "logo.png"}, nil)
	w := serve(a, httptest.NewRequest(http.MethodGet, "/pricing", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Almost there")
	assert.Contains(t, w.Body.String(), "<em>soon</em>")
	assert.Contains(t, w.Body.String(), `src="/logo"`)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))

	t.Run("without a password every visitor gets the page", func(t *testing.T) {
		assert.NotContains(t, w.Body.String(), "<form")

		req := httptest.NewRequest(http.MethodPost, "/pricing", strings.NewReader("comingsoon_password=anything"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := serve(a, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NotContains(t, w.Body.String(), "site:")
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("logo is reachable while gated", func(t *testing.T) {
		w := serve(a, httptest.NewRequest(http.MethodGet, middleware.LogoPath, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	})

	t.Run("probes bypass the page", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(a, httptest.NewRequest(http.MethodGet, "/live", nil)).Code)
		w := serve(a, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})
}

func TestAppPasswordChallenge(t *testing.T) {
	t.Parallel()

	a := newApp(t, settings.Settings{Enabled: true, Title: "Soon", Password: "letmein"}, nil)
	w := serve(a, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `name="comingsoon_password"`)
	assert.Contains(t, w.Body.String(), `name="_csrf"`)
}

func TestAppPreviewToken(t *testing.T) {
	t.Parallel()

	a := newApp(t, settings.Settings{Enabled: true, Title: "Soon"}, func(cfg *app.Config) {
		cfg.Preview.Secret = "preview-secret"
	})

	svc, err := preview.New(preview.Config{Secret: "preview-secret"})
	require.NoError(t, err)
	tok, _, err := svc.Mint("admin", 0)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := serve(a, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "site:/dashboard", w.Body.String())

	t.Run("preview link sets cookie and redirects", func(t *testing.T) {
		w := serve(a, httptest.NewRequest(http.MethodGet, "/dashboard?"+middleware.PreviewQueryParam+"="+tok, nil))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	})

	t.Run("forged token is ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+tok+"x")
		assert.Equal(t, http.StatusServiceUnavailable, serve(a, req).Code)
	})
}
