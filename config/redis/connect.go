package redis

import (
	"fmt"

	"alertr-srv/config"
	pkgRedis "alertr-srv/pkg/redis"
)

// Connect returns nil, nil when Redis is not configured.
func Connect(cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	if cfg.Host == "" {
		return nil, nil
	}
	client, err := pkgRedis.New(pkgRedis.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
		UseTLS:   cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("config.redis.Connect: %w", err)
	}
	return client, nil
}
