package adapter

import (
	"context"
	"sql-arena/internal/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStoreAdapter implements the domain.Store interface using a Redis
// client. It backs both the persisted profile record and the per-topic
// theory cache.
type RedisStoreAdapter struct {
	client *redis.Client
}

// NewRedisStoreAdapter creates a new instance of RedisStoreAdapter.
// It expects a connected *redis.Client.
func NewRedisStoreAdapter(client *redis.Client) domain.Store {
	return &RedisStoreAdapter{client: client}
}

// Get retrieves a value from the store.
// It translates redis.Nil to domain.ErrKeyNotFound.
func (r *RedisStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", domain.ErrKeyNotFound
		}
		return "", err
	}
	return val, nil
}

// Set writes a value to the store.
func (r *RedisStoreAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Delete removes a key from the store.
func (r *RedisStoreAdapter) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Ping checks the health of the Redis server.
func (r *RedisStoreAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
