package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key settings are stored under.
const DefaultRedisKey = "comingsoon:settings"

// RedisClient is the subset of redis.Cmdable used by RedisStore.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisStore keeps settings as a JSON document under one key.
type RedisStore struct {
	client RedisClient
	key    string
}

// NewRedisStore returns a store using client. An empty key selects DefaultRedisKey.
func NewRedisStore(client RedisClient, key string) (*RedisStore, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}, nil
}

func (r *RedisStore) Load(ctx context.Context) (Settings, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Settings{}, ErrNotFound
		}
		return Settings{}, fmt.Errorf("%w: redis get %s: %w", ErrLoadFailed, r.key, err)
	}

	s := Defaults()
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("%w: decode %s: %w", ErrLoadFailed, r.key, err)
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, s Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}
