package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the go-redis client backing the redis record-store
// driver. Connectivity is validated here so a bad REDIS_URL fails at
// startup instead of on the first patient lookup.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
