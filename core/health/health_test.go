package health_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/comingsoon/core/health"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	health.Liveness().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-cache")
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }

	t.Run("all checks pass", func(t *testing.T) {
		w := httptest.NewRecorder()
		health.Readiness(nil, ok, ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("no checks", func(t *testing.T) {
		w := httptest.NewRecorder()
		health.Readiness(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("failing check", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		called := false
		after := func(context.Context) error { called = true; return nil }

		h := health.Readiness(log, ok, health.Named("redis", func(context.Context) error {
			return errors.New("connection refused")
		}), after)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.False(t, called)
		assert.Contains(t, buf.String(), "redis: connection refused")
	})
}

func TestNamed(t *testing.T) {
	t.Parallel()

	base := errors.New("down")
	err := health.Named("pg", func(context.Context) error { return base })(context.Background())
	assert.ErrorIs(t, err, base)
	assert.EqualError(t, err, "pg: down")
	assert.NoError(t, health.Named("pg", func(context.Context) error { return nil })(context.Background()))
}
