package redis

import "errors"

var (
	ErrEmptyConnectionURL           = errors.New("redis: REDIS_URL is empty")
	ErrFailedToParseRedisConnString = errors.New("redis: invalid connection URL")
	ErrRedisNotReady                = errors.New("redis: no PING answered within the retry budget")
	ErrHealthcheckFailed            = errors.New("redis: healthcheck failed")
)
