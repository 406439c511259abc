package redis

import (
	"bizlist/config"

	"github.com/redis/go-redis/v9"
)

// NewClient creates a Redis client from the application configuration.
func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}
