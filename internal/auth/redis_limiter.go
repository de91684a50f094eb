package auth

import (
	"context"
	"fmt"
	"time"

	"alertr-srv/pkg/log"
	"alertr-srv/pkg/redis"
)

const redisKeyPrefix = "alertr:ratelimit:"

// RedisLimiter is a fixed one-minute window counter shared by every replica.
type RedisLimiter struct {
	redis  redis.IRedis
	config RateLimitConfig
	logger log.Logger
	now    func() time.Time
}

func NewRedisLimiter(r redis.IRedis, config RateLimitConfig, logger log.Logger) *RedisLimiter {
	return &RedisLimiter{
		redis:  r,
		config: config.withDefaults(),
		logger: logger,
		now:    time.Now,
	}
}

func (rl *RedisLimiter) windowKey(key string) string {
	return fmt.Sprintf("%s%s:%d", redisKeyPrefix, key, rl.now().Unix()/60)
}

// Allow fails open: a Redis error allows the request and is returned so the
// caller can log it.
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := rl.windowKey(key)
	n, err := rl.redis.Incr(ctx, k)
	if err != nil {
		return true, fmt.Errorf("incr %s: %w", k, err)
	}
	if n == 1 {
		if err := rl.redis.Expire(ctx, k, 2*time.Minute); err != nil {
			rl.logger.Warnf(ctx, "internal.auth.RedisLimiter.Allow: expire: %v", err)
		}
	}
	if n > int64(rl.config.RequestsPerMinute) {
		rl.logger.Debugf(ctx, "internal.auth.RedisLimiter.Allow: %v", &RateLimitError{Key: key, Max: rl.config.RequestsPerMinute})
		return false, nil
	}
	return true, nil
}

func (rl *RedisLimiter) Close() error {
	return rl.redis.Close()
}
