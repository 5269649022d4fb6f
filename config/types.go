package config

import (
	"fmt"
	"time"
)

// Config aggregates all service configuration blocks.
type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Redis     RedisConfig     `json:"redis"`
	Ingest    IngestConfig    `json:"ingest"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Trending  TrendingConfig  `json:"trending"`
	Chat      ChatConfig      `json:"chat"`
	Retry     RetryConfig     `json:"retry"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Auth      AuthConfig      `json:"auth"`
	Metrics   MetricsConfig   `json:"metrics"`
	Stream    StreamConfig    `json:"stream"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"8000"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

type DatabaseConfig struct {
	Host         string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port         int           `json:"port" env:"DB_PORT" default:"5432"`
	Name         string        `json:"name" env:"DB_NAME" default:"newshub"`
	User         string        `json:"user" env:"DB_USER" default:"newshub"`
	Password     string        `json:"password" env:"NEWS_HUB_DB_PASSWORD" default:""`
	SSLMode      string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"prefer"`
	MaxConns     int           `json:"max_conns" env:"DB_MAX_CONNS" default:"10"`
	QueryTimeout time.Duration `json:"query_timeout" env:"DB_QUERY_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	URL            string        `json:"url" env:"REDIS_URL" default:"redis://localhost:6379"`
	TranslationTTL time.Duration `json:"translation_ttl" env:"REDIS_TRANSLATION_TTL" default:"720h"`
	Enabled        bool          `json:"enabled" env:"REDIS_ENABLED" default:"false"`
}

type IngestConfig struct {
	QueueCapacity      int           `json:"queue_capacity" env:"INGEST_QUEUE_CAPACITY" default:"1000"`
	Workers            int           `json:"workers" env:"INGEST_WORKERS" default:"4"`
	DefaultTTL         time.Duration `json:"default_ttl" env:"INGEST_DEFAULT_TTL" default:"5h"`
	TrustedSourceTypes []string      `json:"trusted_source_types" env:"INGEST_TRUSTED_SOURCE_TYPES" default:"manual,rss"`
	EnrichmentTimeout  time.Duration `json:"enrichment_timeout" env:"INGEST_ENRICHMENT_TIMEOUT" default:"30s"`
}

type SchedulerConfig struct {
	DigestInterval  time.Duration `json:"digest_interval" env:"SCHEDULER_DIGEST_INTERVAL" default:"5m"`
	DigestPolicy    string        `json:"digest_policy" env:"SCHEDULER_DIGEST_POLICY" default:"rolling"`
	DigestDailyHour int           `json:"digest_daily_hour" env:"SCHEDULER_DIGEST_DAILY_HOUR" default:"8"`
	DigestBatchSize int           `json:"digest_batch_size" env:"SCHEDULER_DIGEST_BATCH_SIZE" default:"10"`
	NotifyInterval  time.Duration `json:"notify_interval" env:"SCHEDULER_NOTIFY_INTERVAL" default:"15m"`
	CleanupInterval time.Duration `json:"cleanup_interval" env:"SCHEDULER_CLEANUP_INTERVAL" default:"4h"`
}

type TrendingConfig struct {
	Window         time.Duration `json:"window" env:"TRENDING_WINDOW" default:"24h"`
	RatingWeight   float64       `json:"rating_weight" env:"TRENDING_RATING_WEIGHT" default:"10.0"`
	RecencyHorizon time.Duration `json:"recency_horizon" env:"TRENDING_RECENCY_HORIZON" default:"48h"`
	DefaultLimit   int           `json:"default_limit" env:"TRENDING_DEFAULT_LIMIT" default:"5"`
}

type ChatConfig struct {
	Enabled          bool          `json:"enabled" env:"CHAT_GATEWAY_ENABLED" default:"false"`
	Host             string        `json:"host" env:"CHAT_GATEWAY_HOST" default:"http://chat-gateway:8080"`
	Timeout          time.Duration `json:"timeout" env:"CHAT_GATEWAY_TIMEOUT" default:"30s"`
	BreakerThreshold int           `json:"breaker_threshold" env:"CHAT_GATEWAY_BREAKER_THRESHOLD" default:"5"`
	BreakerCooldown  time.Duration `json:"breaker_cooldown" env:"CHAT_GATEWAY_BREAKER_COOLDOWN" default:"1m"`
}

type RetryConfig struct {
	MaxAttempts   int           `json:"max_attempts" env:"RETRY_MAX_ATTEMPTS" default:"3"`
	BaseDelay     time.Duration `json:"base_delay" env:"RETRY_BASE_DELAY" default:"1s"`
	MaxDelay      time.Duration `json:"max_delay" env:"RETRY_MAX_DELAY" default:"30s"`
	BackoffFactor float64       `json:"backoff_factor" env:"RETRY_BACKOFF_FACTOR" default:"2.0"`
	JitterFactor  float64       `json:"jitter_factor" env:"RETRY_JITTER_FACTOR" default:"0.1"`
}

type RateLimitConfig struct {
	Enabled         bool          `json:"enabled" env:"RATE_LIMIT_ENABLED" default:"false"`
	RequestInterval time.Duration `json:"request_interval" env:"RATE_LIMIT_REQUEST_INTERVAL" default:"200ms"`
	Burst           int           `json:"burst" env:"RATE_LIMIT_BURST" default:"20"`
	IdleEviction    time.Duration `json:"idle_eviction" env:"RATE_LIMIT_IDLE_EVICTION" default:"1h"`
}

type AuthConfig struct {
	Enabled       bool   `json:"enabled" env:"AUTH_ENABLED" default:"false"`
	ServiceSecret string `json:"service_secret" env:"AUTH_SERVICE_SECRET" default:""`
	Issuer        string `json:"issuer" env:"AUTH_ISSUER" default:"news-hub"`
}

type MetricsConfig struct {
	Enabled           bool          `json:"enabled" env:"METRICS_ENABLED" default:"true"`
	Port              int           `json:"port" env:"METRICS_PORT" default:"9201"`
	Path              string        `json:"path" env:"METRICS_PATH" default:"/metrics"`
	ReadHeaderTimeout time.Duration `json:"read_header_timeout" env:"METRICS_READ_HEADER_TIMEOUT" default:"10s"`
	ReadTimeout       time.Duration `json:"read_timeout" env:"METRICS_READ_TIMEOUT" default:"30s"`
	WriteTimeout      time.Duration `json:"write_timeout" env:"METRICS_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout       time.Duration `json:"idle_timeout" env:"METRICS_IDLE_TIMEOUT" default:"120s"`
}

type StreamConfig struct {
	Enabled      bool          `json:"enabled" env:"STREAM_ENABLED" default:"false"`
	StreamKey    string        `json:"stream_key" env:"STREAM_KEY" default:"news:submissions"`
	GroupName    string        `json:"group_name" env:"STREAM_GROUP_NAME" default:"news-hub"`
	ConsumerName string        `json:"consumer_name" env:"STREAM_CONSUMER_NAME" default:"news-hub-1"`
	BatchSize    int64         `json:"batch_size" env:"STREAM_BATCH_SIZE" default:"10"`
	BlockTimeout time.Duration `json:"block_timeout" env:"STREAM_BLOCK_TIMEOUT" default:"5s"`
}

// Digest dispatch policies. Rolling treats every frequency as a sliding
// window; calendar gates daily digests on DigestDailyHour.
const (
	DigestPolicyRolling  = "rolling"
	DigestPolicyCalendar = "calendar"
)

// DSN renders the pgx connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s&pool_max_conns=%d",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode, d.MaxConns)
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8000,
			ShutdownTimeout: 30 * time.Second,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
		},
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         5432,
			Name:         "newshub",
			User:         "newshub",
			Password:     "",
			SSLMode:      "prefer",
			MaxConns:     10,
			QueryTimeout: 10 * time.Second,
		},
		Redis: RedisConfig{
			URL:            "redis://localhost:6379",
			TranslationTTL: 720 * time.Hour,
			Enabled:        false,
		},
		Ingest: IngestConfig{
			QueueCapacity:      1000,
			Workers:            4,
			DefaultTTL:         5 * time.Hour,
			TrustedSourceTypes: []string{"manual", "rss"},
			EnrichmentTimeout:  30 * time.Second,
		},
		Scheduler: SchedulerConfig{
			DigestInterval:  5 * time.Minute,
			DigestPolicy:    DigestPolicyRolling,
			DigestDailyHour: 8,
			DigestBatchSize: 10,
			NotifyInterval:  15 * time.Minute,
			CleanupInterval: 4 * time.Hour,
		},
		Trending: TrendingConfig{
			Window:         24 * time.Hour,
			RatingWeight:   10.0,
			RecencyHorizon: 48 * time.Hour,
			DefaultLimit:   5,
		},
		Chat: ChatConfig{
			Enabled:          false,
			Host:             "http://chat-gateway:8080",
			Timeout:          30 * time.Second,
			BreakerThreshold: 5,
			BreakerCooldown:  time.Minute,
		},
		Retry: RetryConfig{
			MaxAttempts:   3,
			BaseDelay:     1 * time.Second,
			MaxDelay:      30 * time.Second,
			BackoffFactor: 2.0,
			JitterFactor:  0.1,
		},
		RateLimit: RateLimitConfig{
			Enabled:         false,
			RequestInterval: 200 * time.Millisecond,
			Burst:           20,
			IdleEviction:    time.Hour,
		},
		Auth: AuthConfig{
			Enabled:       false,
			ServiceSecret: "",
			Issuer:        "news-hub",
		},
		Metrics: MetricsConfig{
			Enabled:           true,
			Port:              9201,
			Path:              "/metrics",
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		Stream: StreamConfig{
			Enabled:      false,
			StreamKey:    "news:submissions",
			GroupName:    "news-hub",
			ConsumerName: "news-hub-1",
			BatchSize:    10,
			BlockTimeout: 5 * time.Second,
		},
	}
}
