// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"servicedirectory/config"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to the Redis instance shared by every frontend
// replica. It returns nil, nil when no address is configured.
func NewRedisClient(cfg config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}
