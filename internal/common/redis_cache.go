package common

import (
	"context"
	"encoding/json"
	"time"

	"flightline/opsdeck/internal/logging"

	"github.com/redis/go-redis/v9"
)

// RedisCache shares the cache across instances. Values go through JSON, so
// typed documents come back as generic maps; GetTyped turns those into
// misses and the services recompute. The fleet listing and timeline caches
// trade hit rate for a single shared invalidation point.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

var _ Cache = (*RedisCache)(nil)

// NewRedisCache wraps an existing redis client as a Cache backend
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Set(key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Warn("Redis cache: failed to marshal value", "key", key, "error", err.Error())
		return
	}

	if err := r.client.Set(r.ctx, key, data, ttl).Err(); err != nil {
		logging.Warn("Redis cache: failed to set key", "key", key, "error", err.Error())
	}
}

func (r *RedisCache) Get(key string) (any, bool) {
	data, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logging.Warn("Redis cache: failed to get key", "key", key, "error", err.Error())
		return nil, false
	}

	var result any
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		logging.Warn("Redis cache: failed to unmarshal value", "key", key, "error", err.Error())
		return nil, false
	}

	return result, true
}

func (r *RedisCache) Delete(key string) {
	if err := r.client.Del(r.ctx, key).Err(); err != nil {
		logging.Warn("Redis cache: failed to delete key", "key", key, "error", err.Error())
	}
}

// Close closes the underlying redis connection
func (r *RedisCache) Close() error {
	return r.client.Close()
}
