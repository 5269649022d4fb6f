package config

import (
	"fmt"
	"time"
)

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}

	if config.Database.Port <= 0 || config.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", config.Database.Port)
	}

	if config.Database.MaxConns <= 0 {
		return fmt.Errorf("database max conns must be positive: %d", config.Database.MaxConns)
	}

	if config.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database query timeout must be positive: %v", config.Database.QueryTimeout)
	}

	if config.Ingest.QueueCapacity <= 0 {
		return fmt.Errorf("ingest queue capacity must be positive: %d", config.Ingest.QueueCapacity)
	}

	if config.Ingest.Workers <= 0 {
		return fmt.Errorf("ingest workers must be positive: %d", config.Ingest.Workers)
	}

	if config.Ingest.DefaultTTL <= 0 {
		return fmt.Errorf("ingest default TTL must be positive: %v", config.Ingest.DefaultTTL)
	}

	if config.Scheduler.DigestPolicy != DigestPolicyRolling && config.Scheduler.DigestPolicy != DigestPolicyCalendar {
		return fmt.Errorf("invalid digest policy: %s", config.Scheduler.DigestPolicy)
	}

	if config.Scheduler.DigestDailyHour < 0 || config.Scheduler.DigestDailyHour > 23 {
		return fmt.Errorf("digest daily hour must be within 0..23: %d", config.Scheduler.DigestDailyHour)
	}

	if config.Scheduler.DigestBatchSize <= 0 {
		return fmt.Errorf("digest batch size must be positive: %d", config.Scheduler.DigestBatchSize)
	}

	if config.Scheduler.DigestInterval <= 0 {
		return fmt.Errorf("digest interval must be positive: %v", config.Scheduler.DigestInterval)
	}

	// Auto-notifications promise delivery within fifteen minutes of
	// eligibility, so the sweep may not run less often than that.
	if config.Scheduler.NotifyInterval <= 0 || config.Scheduler.NotifyInterval > 15*time.Minute {
		return fmt.Errorf("notify interval must be within (0, 15m]: %v", config.Scheduler.NotifyInterval)
	}

	if config.Scheduler.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive: %v", config.Scheduler.CleanupInterval)
	}

	if config.Trending.Window <= 0 {
		return fmt.Errorf("trending window must be positive: %v", config.Trending.Window)
	}

	if config.Trending.RatingWeight < 0 {
		return fmt.Errorf("trending rating weight must be non-negative: %f", config.Trending.RatingWeight)
	}

	if config.Trending.RecencyHorizon <= 0 {
		return fmt.Errorf("trending recency horizon must be positive: %v", config.Trending.RecencyHorizon)
	}

	if config.Trending.DefaultLimit <= 0 {
		return fmt.Errorf("trending default limit must be positive: %d", config.Trending.DefaultLimit)
	}

	if config.Chat.Enabled && config.Chat.Host == "" {
		return fmt.Errorf("chat gateway host cannot be empty when CHAT_GATEWAY_ENABLED is true")
	}

	if config.Chat.Enabled && config.Chat.Timeout <= 0 {
		return fmt.Errorf("chat gateway timeout must be positive: %v", config.Chat.Timeout)
	}

	if config.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("retry max attempts must be positive: %d", config.Retry.MaxAttempts)
	}

	if config.Retry.BackoffFactor <= 1.0 {
		return fmt.Errorf("backoff factor must be greater than 1.0: %f", config.Retry.BackoffFactor)
	}

	if config.RateLimit.Enabled {
		if config.RateLimit.RequestInterval <= 0 {
			return fmt.Errorf("rate limit request interval must be positive: %v", config.RateLimit.RequestInterval)
		}
		if config.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate limit burst must be positive: %d", config.RateLimit.Burst)
		}
	}

	if config.Chat.Enabled && config.Chat.BreakerThreshold <= 0 {
		return fmt.Errorf("chat gateway breaker threshold must be positive: %d", config.Chat.BreakerThreshold)
	}

	if config.Auth.Enabled && config.Auth.ServiceSecret == "" {
		return fmt.Errorf("auth service secret cannot be empty when AUTH_ENABLED is true")
	}

	if config.Metrics.Port <= 0 || config.Metrics.Port > 65535 {
		return fmt.Errorf("invalid metrics port: %d", config.Metrics.Port)
	}

	if config.Stream.Enabled {
		if config.Stream.StreamKey == "" {
			return fmt.Errorf("stream key cannot be empty when STREAM_ENABLED is true")
		}
		if config.Stream.GroupName == "" {
			return fmt.Errorf("stream group name cannot be empty when STREAM_ENABLED is true")
		}
		if config.Stream.BatchSize <= 0 {
			return fmt.Errorf("stream batch size must be positive: %d", config.Stream.BatchSize)
		}
		if !config.Redis.Enabled {
			return fmt.Errorf("stream consumer requires REDIS_ENABLED")
		}
	}

	return nil
}
