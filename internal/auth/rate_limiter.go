package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"alertr-srv/pkg/log"

	"golang.org/x/time/rate"
)

// Limiter decides whether one more request from key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Close() error
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// RequestsPerMinute is the sustained rate per key.
	RequestsPerMinute int

	// Burst is the bucket size of the in-memory limiter.
	Burst int

	// IdleTTL is how long an idle in-memory bucket is kept.
	IdleTTL time.Duration

	// CleanupInterval is how often idle buckets are swept.
	CleanupInterval time.Duration
}

// DefaultRateLimitConfig returns default rate limiting configuration
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: 30,
		Burst:             10,
		IdleTTL:           10 * time.Minute,
		CleanupInterval:   time.Minute,
	}
}

func (c RateLimitConfig) withDefaults() RateLimitConfig {
	d := DefaultRateLimitConfig()
	if c.RequestsPerMinute <= 0 {
		c.RequestsPerMinute = d.RequestsPerMinute
	}
	if c.Burst <= 0 {
		c.Burst = d.Burst
	}
	if c.IdleTTL <= 0 {
		c.IdleTTL = d.IdleTTL
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = d.CleanupInterval
	}
	return c
}

// RateLimitError represents a rate limit exceeded error
type RateLimitError struct {
	Key string
	Max int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s (max: %d/min)", e.Key, e.Max)
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per key in process memory.
type MemoryLimiter struct {
	buckets map[string]*bucket
	mu      sync.Mutex
	config  RateLimitConfig
	logger  log.Logger
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryLimiter creates a MemoryLimiter and starts its cleanup goroutine.
func NewMemoryLimiter(config RateLimitConfig, logger log.Logger) *MemoryLimiter {
	ml := &MemoryLimiter{
		buckets: make(map[string]*bucket),
		config:  config.withDefaults(),
		logger:  logger,
		now:     time.Now,
		stop:    make(chan struct{}),
	}

	go ml.cleanupLoop()

	return ml
}

func (ml *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	now := ml.now()
	b, ok := ml.buckets[key]
	if !ok {
		every := time.Minute / time.Duration(ml.config.RequestsPerMinute)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(every), ml.config.Burst)}
		ml.buckets[key] = b
	}
	b.lastSeen = now

	if !b.limiter.AllowN(now, 1) {
		ml.logger.Debugf(ctx, "internal.auth.MemoryLimiter.Allow: %v", &RateLimitError{Key: key, Max: ml.config.RequestsPerMinute})
		return false, nil
	}
	return true, nil
}

// Len returns the number of tracked keys.
func (ml *MemoryLimiter) Len() int {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	return len(ml.buckets)
}

func (ml *MemoryLimiter) Close() error {
	ml.stopOnce.Do(func() { close(ml.stop) })
	return nil
}

// cleanupLoop periodically drops idle buckets
func (ml *MemoryLimiter) cleanupLoop() {
	ticker := time.NewTicker(ml.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ml.stop:
			return
		case <-ticker.C:
			ml.cleanupIdle()
		}
	}
}

func (ml *MemoryLimiter) cleanupIdle() {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	cutoff := ml.now().Add(-ml.config.IdleTTL)
	for key, b := range ml.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(ml.buckets, key)
		}
	}
}
