// ABOUTME: This file implements per-caller token bucket rate limiting
// ABOUTME: Buckets refill over time and idle callers are evicted periodically
package ratelimit

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"news-hub/config"
)

// callerBucket tracks the token budget for a single caller.
type callerBucket struct {
	tokens     int
	lastRefill time.Time
	lastSeen   time.Time
	denied     int64
	mu         sync.Mutex
}

// CallerLimiter enforces a token bucket per caller key. Allow never
// blocks; callers over budget are rejected immediately.
type CallerLimiter struct {
	interval     time.Duration
	burst        int
	idleEviction time.Duration
	buckets      map[string]*callerBucket
	mu           sync.RWMutex
	logger       *slog.Logger
}

// NewCallerLimiter creates a limiter from config. One token refills per
// RequestInterval, up to Burst.
func NewCallerLimiter(cfg config.RateLimitConfig, logger *slog.Logger) (*CallerLimiter, error) {
	if cfg.RequestInterval <= 0 {
		return nil, errors.New("request interval must be positive")
	}

	if cfg.Burst <= 0 {
		return nil, errors.New("burst must be positive")
	}

	idleEviction := cfg.IdleEviction
	if idleEviction <= 0 {
		idleEviction = time.Hour
	}

	logger.Info("rate limiter initialized",
		"request_interval", cfg.RequestInterval,
		"burst", cfg.Burst,
		"idle_eviction", idleEviction)

	return &CallerLimiter{
		interval:     cfg.RequestInterval,
		burst:        cfg.Burst,
		idleEviction: idleEviction,
		buckets:      make(map[string]*callerBucket),
		logger:       logger,
	}, nil
}

// Allow reports whether the caller may proceed, consuming one token if so.
func (l *CallerLimiter) Allow(key string) bool {
	bucket := l.getBucket(key)

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	now := time.Now()
	bucket.lastSeen = now

	// lastRefill only advances by whole intervals so partial intervals
	// are not lost while a caller is being rejected.
	refill := int(now.Sub(bucket.lastRefill) / l.interval)
	if refill > 0 {
		bucket.tokens += refill
		if bucket.tokens > l.burst {
			bucket.tokens = l.burst
		}
		bucket.lastRefill = bucket.lastRefill.Add(time.Duration(refill) * l.interval)
	}

	if bucket.tokens <= 0 {
		bucket.denied++
		if bucket.denied == 1 || bucket.denied%100 == 0 {
			l.logger.Warn("caller rate limited", "caller", key, "denied_total", bucket.denied)
		}
		return false
	}

	bucket.tokens--
	return true
}

// Denied returns how many requests were rejected for the caller.
func (l *CallerLimiter) Denied(key string) int64 {
	l.mu.RLock()
	bucket, exists := l.buckets[key]
	l.mu.RUnlock()

	if !exists {
		return 0
	}

	bucket.mu.Lock()
	defer bucket.mu.Unlock()
	return bucket.denied
}

// Cleanup evicts buckets that have not been used within the idle window.
func (l *CallerLimiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for key, bucket := range l.buckets {
		bucket.mu.Lock()
		idle := now.Sub(bucket.lastSeen)
		bucket.mu.Unlock()

		if idle > l.idleEviction {
			delete(l.buckets, key)
			l.logger.Debug("evicted idle rate limit bucket", "caller", key)
		}
	}
}

// Size returns the number of tracked callers.
func (l *CallerLimiter) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.buckets)
}

// getBucket gets or creates the bucket for a caller.
func (l *CallerLimiter) getBucket(key string) *callerBucket {
	l.mu.RLock()
	bucket, exists := l.buckets[key]
	l.mu.RUnlock()

	if exists {
		return bucket
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring the write lock.
	if bucket, exists := l.buckets[key]; exists {
		return bucket
	}

	bucket = &callerBucket{
		tokens:     l.burst,
		lastRefill: time.Now(),
		lastSeen:   time.Now(),
	}
	l.buckets[key] = bucket
	return bucket
}
