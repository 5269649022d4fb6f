// ABOUTME: This file initializes the Redis client used for caching and streams.
// ABOUTME: Redis is optional; callers must tolerate a nil client.
package driver

import (
	"context"
	"fmt"

	"news-hub/config"
	logger "news-hub/utils/logger"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis using the configured URL and verifies the
// connection with a ping. Returns nil without error when Redis is disabled.
func InitRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		logger.Logger.InfoContext(ctx, "redis disabled, caching and streams unavailable")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Logger.ErrorContext(ctx, "failed to ping redis", "error", err)
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Logger.InfoContext(ctx, "connected to redis", "addr", opts.Addr)

	return client, nil
}
