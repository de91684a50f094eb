package redis

import goredis "github.com/redis/go-redis/v9"

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	UseTLS   bool
}

type redisImpl struct {
	client *goredis.Client
}
