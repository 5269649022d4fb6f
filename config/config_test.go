// ABOUTME: This file tests configuration management and environment variable loading
// ABOUTME: Tests config validation, defaults, and error handling for production use
package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := map[string]struct {
		envVars     map[string]string
		expectError bool
		validate    func(*testing.T, *Config)
	}{
		"default values": {
			envVars: map[string]string{},
			validate: func(t *testing.T, c *Config) {
				assert.Equal(t, 8000, c.Server.Port)
				assert.Equal(t, 1000, c.Ingest.QueueCapacity)
				assert.Equal(t, 4, c.Ingest.Workers)
				assert.Equal(t, 5*time.Hour, c.Ingest.DefaultTTL)
				assert.Equal(t, []string{"manual", "rss"}, c.Ingest.TrustedSourceTypes)
				assert.Equal(t, 15*time.Minute, c.Scheduler.NotifyInterval)
				assert.Equal(t, 4*time.Hour, c.Scheduler.CleanupInterval)
				assert.Equal(t, DigestPolicyRolling, c.Scheduler.DigestPolicy)
				assert.Equal(t, 24*time.Hour, c.Trending.Window)
				assert.Equal(t, 10.0, c.Trending.RatingWeight)
				assert.Equal(t, 48*time.Hour, c.Trending.RecencyHorizon)
				assert.Equal(t, 10*time.Second, c.Database.QueryTimeout)
				assert.Equal(t, true, c.Metrics.Enabled)
				assert.Equal(t, false, c.Stream.Enabled)
				assert.Equal(t, false, c.Auth.Enabled)
			},
		},
		"custom values": {
			envVars: map[string]string{
				"SERVER_PORT":                 "8080",
				"INGEST_DEFAULT_TTL":          "10h",
				"INGEST_QUEUE_CAPACITY":       "50",
				"INGEST_TRUSTED_SOURCE_TYPES": "manual, api",
				"SCHEDULER_NOTIFY_INTERVAL":   "5m",
				"TRENDING_RATING_WEIGHT":      "2.5",
				"RETRY_MAX_ATTEMPTS":          "5",
				"METRICS_ENABLED":             "false",
			},
			validate: func(t *testing.T, c *Config) {
				assert.Equal(t, 8080, c.Server.Port)
				assert.Equal(t, 10*time.Hour, c.Ingest.DefaultTTL)
				assert.Equal(t, 50, c.Ingest.QueueCapacity)
				assert.Equal(t, []string{"manual", "api"}, c.Ingest.TrustedSourceTypes)
				assert.Equal(t, 5*time.Minute, c.Scheduler.NotifyInterval)
				assert.Equal(t, 2.5, c.Trending.RatingWeight)
				assert.Equal(t, 5, c.Retry.MaxAttempts)
				assert.Equal(t, false, c.Metrics.Enabled)
			},
		},
		"invalid port": {
			envVars: map[string]string{
				"SERVER_PORT": "70000",
			},
			expectError: true,
		},
		"invalid duration": {
			envVars: map[string]string{
				"INGEST_DEFAULT_TTL": "invalid",
			},
			expectError: true,
		},
		"notify interval above the delivery promise": {
			envVars: map[string]string{
				"SCHEDULER_NOTIFY_INTERVAL": "30m",
			},
			expectError: true,
		},
		"unknown digest policy": {
			envVars: map[string]string{
				"SCHEDULER_DIGEST_POLICY": "weekly",
			},
			expectError: true,
		},
		"auth enabled without secret": {
			envVars: map[string]string{
				"AUTH_ENABLED": "true",
			},
			expectError: true,
		},
		"stream consumer requires redis": {
			envVars: map[string]string{
				"STREAM_ENABLED": "true",
			},
			expectError: true,
		},
		"stream consumer with redis enabled": {
			envVars: map[string]string{
				"STREAM_ENABLED": "true",
				"REDIS_ENABLED":  "true",
			},
			validate: func(t *testing.T, c *Config) {
				assert.True(t, c.Stream.Enabled)
				assert.Equal(t, "news:submissions", c.Stream.StreamKey)
				assert.Equal(t, "news-hub", c.Stream.GroupName)
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// 環境変数設定
			for key, value := range tc.envVars {
				_ = os.Setenv(key, value)
				defer func(k string) {
					_ = os.Unsetenv(k)
				}(key)
			}

			config, err := LoadConfig()

			if tc.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, config)
			tc.validate(t, config)
		})
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config { return defaultConfig() }

	tests := map[string]struct {
		mutate      func(*Config)
		expectError bool
		errorMsg    string
	}{
		"valid config": {
			mutate:      func(c *Config) {},
			expectError: false,
		},
		"invalid port zero": {
			mutate:      func(c *Config) { c.Server.Port = 0 },
			expectError: true,
			errorMsg:    "invalid server port",
		},
		"invalid port high": {
			mutate:      func(c *Config) { c.Server.Port = 70000 },
			expectError: true,
			errorMsg:    "invalid server port",
		},
		"empty queue": {
			mutate:      func(c *Config) { c.Ingest.QueueCapacity = 0 },
			expectError: true,
			errorMsg:    "ingest queue capacity must be positive",
		},
		"no workers": {
			mutate:      func(c *Config) { c.Ingest.Workers = 0 },
			expectError: true,
			errorMsg:    "ingest workers must be positive",
		},
		"zero ttl": {
			mutate:      func(c *Config) { c.Ingest.DefaultTTL = 0 },
			expectError: true,
			errorMsg:    "ingest default TTL must be positive",
		},
		"notify interval too long": {
			mutate:      func(c *Config) { c.Scheduler.NotifyInterval = time.Hour },
			expectError: true,
			errorMsg:    "notify interval must be within (0, 15m]",
		},
		"digest hour out of range": {
			mutate:      func(c *Config) { c.Scheduler.DigestDailyHour = 24 },
			expectError: true,
			errorMsg:    "digest daily hour must be within 0..23",
		},
		"invalid backoff factor": {
			mutate:      func(c *Config) { c.Retry.BackoffFactor = 0.5 },
			expectError: true,
			errorMsg:    "backoff factor must be greater than 1.0",
		},
		"chat enabled without host": {
			mutate: func(c *Config) {
				c.Chat.Enabled = true
				c.Chat.Host = ""
			},
			expectError: true,
			errorMsg:    "chat gateway host cannot be empty",
		},
		"negative trending weight": {
			mutate:      func(c *Config) { c.Trending.RatingWeight = -1 },
			expectError: true,
			errorMsg:    "trending rating weight must be non-negative",
		},
		"rate limit enabled without burst": {
			mutate: func(c *Config) {
				c.RateLimit.Enabled = true
				c.RateLimit.Burst = 0
			},
			expectError: true,
			errorMsg:    "rate limit burst must be positive",
		},
		"rate limit enabled with zero interval": {
			mutate: func(c *Config) {
				c.RateLimit.Enabled = true
				c.RateLimit.RequestInterval = 0
			},
			expectError: true,
			errorMsg:    "rate limit request interval must be positive",
		},
		"chat enabled with zero breaker threshold": {
			mutate: func(c *Config) {
				c.Chat.Enabled = true
				c.Chat.BreakerThreshold = 0
			},
			expectError: true,
			errorMsg:    "chat gateway breaker threshold must be positive",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			config := valid()
			tc.mutate(config)

			err := validateConfig(config)

			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("should handle missing environment variables", func(t *testing.T) {
		config := &Config{}

		err := loadFromEnv(config)
		require.NoError(t, err)

		// Should have default values
		assert.Equal(t, 8000, config.Server.Port)
		assert.Equal(t, 5*time.Hour, config.Ingest.DefaultTTL)
	})

	t.Run("should parse all supported environment variables", func(t *testing.T) {
		envVars := map[string]string{
			"SERVER_PORT":                 "8080",
			"SERVER_SHUTDOWN_TIMEOUT":     "45s",
			"DB_HOST":                     "db.internal",
			"DB_PORT":                     "5433",
			"DB_MAX_CONNS":                "25",
			"INGEST_WORKERS":              "8",
			"SCHEDULER_DIGEST_INTERVAL":   "10m",
			"SCHEDULER_DIGEST_BATCH_SIZE": "20",
			"SCHEDULER_CLEANUP_INTERVAL":  "2h",
			"TRENDING_WINDOW":             "12h",
			"TRENDING_DEFAULT_LIMIT":      "7",
			"RETRY_BASE_DELAY":            "2s",
			"RETRY_MAX_DELAY":             "60s",
			"RETRY_BACKOFF_FACTOR":        "3.0",
			"RETRY_JITTER_FACTOR":         "0.2",
			"METRICS_PORT":                "9202",
			"CHAT_GATEWAY_HOST":           "http://gateway:9000",
			"CHAT_GATEWAY_TIMEOUT":        "10s",
			"RATE_LIMIT_ENABLED":          "true",
			"RATE_LIMIT_BURST":            "50",
		}

		for key, value := range envVars {
			_ = os.Setenv(key, value)
			defer func(k string) {
				_ = os.Unsetenv(k)
			}(key)
		}

		config := &Config{}
		err := loadFromEnv(config)
		require.NoError(t, err)

		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, 45*time.Second, config.Server.ShutdownTimeout)
		assert.Equal(t, "db.internal", config.Database.Host)
		assert.Equal(t, 5433, config.Database.Port)
		assert.Equal(t, 25, config.Database.MaxConns)
		assert.Equal(t, 8, config.Ingest.Workers)
		assert.Equal(t, 10*time.Minute, config.Scheduler.DigestInterval)
		assert.Equal(t, 20, config.Scheduler.DigestBatchSize)
		assert.Equal(t, 2*time.Hour, config.Scheduler.CleanupInterval)
		assert.Equal(t, 12*time.Hour, config.Trending.Window)
		assert.Equal(t, 7, config.Trending.DefaultLimit)
		assert.Equal(t, 2*time.Second, config.Retry.BaseDelay)
		assert.Equal(t, 60*time.Second, config.Retry.MaxDelay)
		assert.Equal(t, 3.0, config.Retry.BackoffFactor)
		assert.Equal(t, 0.2, config.Retry.JitterFactor)
		assert.Equal(t, 9202, config.Metrics.Port)
		assert.Equal(t, "http://gateway:9000", config.Chat.Host)
		assert.Equal(t, 10*time.Second, config.Chat.Timeout)
		assert.True(t, config.RateLimit.Enabled)
		assert.Equal(t, 50, config.RateLimit.Burst)
	})
}
