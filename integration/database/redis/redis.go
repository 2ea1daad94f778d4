package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect creates a client for cfg.ConnectionURL and waits until it answers PING.
// Failed attempts back off exponentially starting at cfg.RetryInterval.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(cfg.ConnectionURL, "redis://") && !strings.HasPrefix(cfg.ConnectionURL, "rediss://") {
		return nil, fmt.Errorf("%w: unsupported scheme", ErrFailedToParseRedisConnString)
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := redis.NewClient(opts)

	attempts := max(cfg.RetryAttempts, 1)
	interval := cfg.RetryInterval
	var pingErr error
	for attempt := range attempts {
		if pingErr = client.Ping(ctx).Err(); pingErr == nil {
			return client, nil
		}
		if attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(interval):
			interval *= 2
		}
	}

	_ = client.Close()
	return nil, errors.Join(ErrRedisNotReady, pingErr)
}

// Healthcheck returns a readiness probe that pings client.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
