package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"group-exercise-api/internal/config"
)

// NewRedis creates a Redis client from the configuration. The client is
// optional; callers must tolerate a nil client when Redis is disabled.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	var client *redis.Client

	// redis:// 형식 URL 있으면 우선 사용
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
