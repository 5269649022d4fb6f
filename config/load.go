package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadConfig builds the configuration from defaults and overrides provided via environment variables.
func LoadConfig() (*Config, error) {
	config := defaultConfig()

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func loadFromEnv(config *Config) error {
	*config = *defaultConfig()

	// Load each configuration section
	if err := loadServerConfig(&config.Server); err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	if err := loadDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	if err := loadRedisConfig(&config.Redis); err != nil {
		return fmt.Errorf("failed to load redis config: %w", err)
	}

	if err := loadIngestConfig(&config.Ingest); err != nil {
		return fmt.Errorf("failed to load ingest config: %w", err)
	}

	if err := loadSchedulerConfig(&config.Scheduler); err != nil {
		return fmt.Errorf("failed to load scheduler config: %w", err)
	}

	if err := loadTrendingConfig(&config.Trending); err != nil {
		return fmt.Errorf("failed to load trending config: %w", err)
	}

	if err := loadChatConfig(&config.Chat); err != nil {
		return fmt.Errorf("failed to load chat config: %w", err)
	}

	if err := loadRetryConfig(&config.Retry); err != nil {
		return fmt.Errorf("failed to load retry config: %w", err)
	}

	if err := loadRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("failed to load rate limit config: %w", err)
	}

	if err := loadAuthConfig(&config.Auth); err != nil {
		return fmt.Errorf("failed to load auth config: %w", err)
	}

	if err := loadMetricsConfig(&config.Metrics); err != nil {
		return fmt.Errorf("failed to load metrics config: %w", err)
	}

	if err := loadStreamConfig(&config.Stream); err != nil {
		return fmt.Errorf("failed to load stream config: %w", err)
	}

	return nil
}

// loadServerConfig loads server configuration from environment variables
func loadServerConfig(cfg *ServerConfig) error {
	var err error

	if cfg.Port, err = parseIntEnv("SERVER_PORT", cfg.Port); err != nil {
		return err
	}

	if cfg.ShutdownTimeout, err = parseDurationEnv("SERVER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return err
	}

	if cfg.ReadTimeout, err = parseDurationEnv("SERVER_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return err
	}

	if cfg.WriteTimeout, err = parseDurationEnv("SERVER_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return err
	}

	return nil
}

// loadDatabaseConfig loads database configuration from environment variables
func loadDatabaseConfig(cfg *DatabaseConfig) error {
	var err error

	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Host = host
	}

	if cfg.Port, err = parseIntEnv("DB_PORT", cfg.Port); err != nil {
		return err
	}

	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Name = name
	}

	if user := os.Getenv("DB_USER"); user != "" {
		cfg.User = user
	}

	if password := os.Getenv("NEWS_HUB_DB_PASSWORD"); password != "" {
		cfg.Password = password
	}

	if sslMode := os.Getenv("DB_SSL_MODE"); sslMode != "" {
		cfg.SSLMode = sslMode
	}

	if cfg.MaxConns, err = parseIntEnv("DB_MAX_CONNS", cfg.MaxConns); err != nil {
		return err
	}

	if cfg.QueryTimeout, err = parseDurationEnv("DB_QUERY_TIMEOUT", cfg.QueryTimeout); err != nil {
		return err
	}

	return nil
}

// loadRedisConfig loads redis configuration from environment variables
func loadRedisConfig(cfg *RedisConfig) error {
	var err error

	if url := os.Getenv("REDIS_URL"); url != "" {
		cfg.URL = url
	}

	if cfg.TranslationTTL, err = parseDurationEnv("REDIS_TRANSLATION_TTL", cfg.TranslationTTL); err != nil {
		return err
	}

	if cfg.Enabled, err = parseBoolEnv("REDIS_ENABLED", cfg.Enabled); err != nil {
		return err
	}

	return nil
}

// loadIngestConfig loads ingestion configuration from environment variables
func loadIngestConfig(cfg *IngestConfig) error {
	var err error

	if cfg.QueueCapacity, err = parseIntEnv("INGEST_QUEUE_CAPACITY", cfg.QueueCapacity); err != nil {
		return err
	}

	if cfg.Workers, err = parseIntEnv("INGEST_WORKERS", cfg.Workers); err != nil {
		return err
	}

	if cfg.DefaultTTL, err = parseDurationEnv("INGEST_DEFAULT_TTL", cfg.DefaultTTL); err != nil {
		return err
	}

	if types := os.Getenv("INGEST_TRUSTED_SOURCE_TYPES"); types != "" {
		cfg.TrustedSourceTypes = splitList(types)
	}

	if cfg.EnrichmentTimeout, err = parseDurationEnv("INGEST_ENRICHMENT_TIMEOUT", cfg.EnrichmentTimeout); err != nil {
		return err
	}

	return nil
}

// loadSchedulerConfig loads scheduler configuration from environment variables
func loadSchedulerConfig(cfg *SchedulerConfig) error {
	var err error

	if cfg.DigestInterval, err = parseDurationEnv("SCHEDULER_DIGEST_INTERVAL", cfg.DigestInterval); err != nil {
		return err
	}

	if policy := os.Getenv("SCHEDULER_DIGEST_POLICY"); policy != "" {
		cfg.DigestPolicy = policy
	}

	if cfg.DigestDailyHour, err = parseIntEnv("SCHEDULER_DIGEST_DAILY_HOUR", cfg.DigestDailyHour); err != nil {
		return err
	}

	if cfg.DigestBatchSize, err = parseIntEnv("SCHEDULER_DIGEST_BATCH_SIZE", cfg.DigestBatchSize); err != nil {
		return err
	}

	if cfg.NotifyInterval, err = parseDurationEnv("SCHEDULER_NOTIFY_INTERVAL", cfg.NotifyInterval); err != nil {
		return err
	}

	if cfg.CleanupInterval, err = parseDurationEnv("SCHEDULER_CLEANUP_INTERVAL", cfg.CleanupInterval); err != nil {
		return err
	}

	return nil
}

// loadTrendingConfig loads trending configuration from environment variables
func loadTrendingConfig(cfg *TrendingConfig) error {
	var err error

	if cfg.Window, err = parseDurationEnv("TRENDING_WINDOW", cfg.Window); err != nil {
		return err
	}

	if cfg.RatingWeight, err = parseFloatEnv("TRENDING_RATING_WEIGHT", cfg.RatingWeight); err != nil {
		return err
	}

	if cfg.RecencyHorizon, err = parseDurationEnv("TRENDING_RECENCY_HORIZON", cfg.RecencyHorizon); err != nil {
		return err
	}

	if cfg.DefaultLimit, err = parseIntEnv("TRENDING_DEFAULT_LIMIT", cfg.DefaultLimit); err != nil {
		return err
	}

	return nil
}

// loadChatConfig loads chat gateway configuration from environment variables
func loadChatConfig(cfg *ChatConfig) error {
	var err error

	if cfg.Enabled, err = parseBoolEnv("CHAT_GATEWAY_ENABLED", cfg.Enabled); err != nil {
		return err
	}

	if host := os.Getenv("CHAT_GATEWAY_HOST"); host != "" {
		cfg.Host = host
	}

	if cfg.Timeout, err = parseDurationEnv("CHAT_GATEWAY_TIMEOUT", cfg.Timeout); err != nil {
		return err
	}

	if cfg.BreakerThreshold, err = parseIntEnv("CHAT_GATEWAY_BREAKER_THRESHOLD", cfg.BreakerThreshold); err != nil {
		return err
	}

	if cfg.BreakerCooldown, err = parseDurationEnv("CHAT_GATEWAY_BREAKER_COOLDOWN", cfg.BreakerCooldown); err != nil {
		return err
	}

	return nil
}

// loadRetryConfig loads retry configuration from environment variables
func loadRetryConfig(cfg *RetryConfig) error {
	var err error

	if cfg.MaxAttempts, err = parseIntEnv("RETRY_MAX_ATTEMPTS", cfg.MaxAttempts); err != nil {
		return err
	}

	if cfg.BaseDelay, err = parseDurationEnv("RETRY_BASE_DELAY", cfg.BaseDelay); err != nil {
		return err
	}

	if cfg.MaxDelay, err = parseDurationEnv("RETRY_MAX_DELAY", cfg.MaxDelay); err != nil {
		return err
	}

	if cfg.BackoffFactor, err = parseFloatEnv("RETRY_BACKOFF_FACTOR", cfg.BackoffFactor); err != nil {
		return err
	}

	if cfg.JitterFactor, err = parseFloatEnv("RETRY_JITTER_FACTOR", cfg.JitterFactor); err != nil {
		return err
	}

	return nil
}

// loadRateLimitConfig loads request rate limit configuration from environment variables
func loadRateLimitConfig(cfg *RateLimitConfig) error {
	var err error

	if cfg.Enabled, err = parseBoolEnv("RATE_LIMIT_ENABLED", cfg.Enabled); err != nil {
		return err
	}

	if cfg.RequestInterval, err = parseDurationEnv("RATE_LIMIT_REQUEST_INTERVAL", cfg.RequestInterval); err != nil {
		return err
	}

	if cfg.Burst, err = parseIntEnv("RATE_LIMIT_BURST", cfg.Burst); err != nil {
		return err
	}

	if cfg.IdleEviction, err = parseDurationEnv("RATE_LIMIT_IDLE_EVICTION", cfg.IdleEviction); err != nil {
		return err
	}

	return nil
}

// loadAuthConfig loads service auth configuration from environment variables
func loadAuthConfig(cfg *AuthConfig) error {
	var err error

	if cfg.Enabled, err = parseBoolEnv("AUTH_ENABLED", cfg.Enabled); err != nil {
		return err
	}

	if secret := os.Getenv("AUTH_SERVICE_SECRET"); secret != "" {
		cfg.ServiceSecret = secret
	}

	if issuer := os.Getenv("AUTH_ISSUER"); issuer != "" {
		cfg.Issuer = issuer
	}

	return nil
}

// loadMetricsConfig loads metrics configuration from environment variables
func loadMetricsConfig(cfg *MetricsConfig) error {
	var err error

	if cfg.Enabled, err = parseBoolEnv("METRICS_ENABLED", cfg.Enabled); err != nil {
		return err
	}

	if cfg.Port, err = parseIntEnv("METRICS_PORT", cfg.Port); err != nil {
		return err
	}

	if path := os.Getenv("METRICS_PATH"); path != "" {
		cfg.Path = path
	}

	if cfg.ReadHeaderTimeout, err = parseDurationEnv("METRICS_READ_HEADER_TIMEOUT", cfg.ReadHeaderTimeout); err != nil {
		return err
	}

	if cfg.ReadTimeout, err = parseDurationEnv("METRICS_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return err
	}

	if cfg.WriteTimeout, err = parseDurationEnv("METRICS_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return err
	}

	if cfg.IdleTimeout, err = parseDurationEnv("METRICS_IDLE_TIMEOUT", cfg.IdleTimeout); err != nil {
		return err
	}

	return nil
}

// loadStreamConfig loads stream consumer configuration from environment variables
func loadStreamConfig(cfg *StreamConfig) error {
	var err error

	if cfg.Enabled, err = parseBoolEnv("STREAM_ENABLED", cfg.Enabled); err != nil {
		return err
	}

	if key := os.Getenv("STREAM_KEY"); key != "" {
		cfg.StreamKey = key
	}

	if group := os.Getenv("STREAM_GROUP_NAME"); group != "" {
		cfg.GroupName = group
	}

	if consumer := os.Getenv("STREAM_CONSUMER_NAME"); consumer != "" {
		cfg.ConsumerName = consumer
	}

	if cfg.BatchSize, err = parseInt64Env("STREAM_BATCH_SIZE", cfg.BatchSize); err != nil {
		return err
	}

	if cfg.BlockTimeout, err = parseDurationEnv("STREAM_BLOCK_TIMEOUT", cfg.BlockTimeout); err != nil {
		return err
	}

	return nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return d, nil
	}
	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return i, nil
	}
	return defaultValue, nil
}

func parseInt64Env(key string, defaultValue int64) (int64, error) {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return i, nil
	}
	return defaultValue, nil
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return b, nil
	}
	return defaultValue, nil
}

func parseFloatEnv(key string, defaultValue float64) (float64, error) {
	if value := os.Getenv(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return f, nil
	}
	return defaultValue, nil
}
