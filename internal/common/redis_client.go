package common

import (
	"context"
	"time"

	"flightline/opsdeck/internal/config"
	"flightline/opsdeck/internal/logging"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a redis client from config and verifies the
// connection. A failed ping is logged but the client is still returned;
// the pool reconnects on demand.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	logging.Info("Initializing Redis client", "addr", cfg.Addr())

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("Failed to ping Redis, pool will retry", "error", err.Error())
		return client
	}

	logging.Info("Connected to Redis")
	return client
}
