// Package redis connects to Redis with retries and exposes a health probe.
//
//	cfg := redis.Config{
//		ConnectionURL:  "redis://localhost:6379/0",
//		RetryAttempts:  3,
//		RetryInterval:  time.Second,
//		ConnectTimeout: 30 * time.Second,
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	checks := map[string]health.Check{"redis": redis.Healthcheck(client)}
//
// Both redis:// and rediss:// (TLS) URLs are accepted. Errors wrap the package
// sentinels, so callers can test them with errors.Is:
//
//   - ErrEmptyConnectionURL: no URL configured
//   - ErrFailedToParseRedisConnString: malformed URL or unsupported scheme
//   - ErrRedisNotReady: no successful PING within the retry budget
//   - ErrHealthcheckFailed: PING failed in Healthcheck
package redis
