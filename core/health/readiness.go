package health

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/comingsoon/core/logger"
	"github.com/dmitrymomot/comingsoon/core/response"
)

// DefaultCheckTimeout bounds a full readiness run.
const DefaultCheckTimeout = 5 * time.Second

// Check verifies one dependency.
type Check func(ctx context.Context) error

// Named prefixes the errors of fn with name so failures are attributable in logs.
func Named(name string, fn func(context.Context) error) Check {
	return func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}
}

// Readiness verifies all service dependencies are functioning.
// Returns "READY" if all checks pass, 503 Service Unavailable if any fail.
// Checks run in order and stop at the first failure.
func Readiness(log *slog.Logger, checks ...Check) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), DefaultCheckTimeout)
		defer cancel()

		resp := response.StringWithStatus("READY", http.StatusOK)
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "Readiness check failed", logger.Component("health"), logger.Error(err))
				resp = response.Status(http.StatusServiceUnavailable)
				break
			}
		}

		response.Render(w, r, log, response.WithNoCache(resp))
	})
}
