package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisViewStore keeps view snapshots in Redis.
type RedisViewStore struct {
	client *redis.Client
}

// NewRedisViewStore wraps an existing client.
func NewRedisViewStore(client *redis.Client) *RedisViewStore {
	return &RedisViewStore{client: client}
}

// Delete removes the given keys. Absent keys are ignored by Redis.
func (s *RedisViewStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// Put stores a rendered snapshot for the rendering layer.
func (s *RedisViewStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Get fetches a snapshot, returning found=false on a miss.
func (s *RedisViewStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}
