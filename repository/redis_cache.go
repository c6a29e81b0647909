package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds how long a session's last assessment survives.
const sessionTTL = 30 * time.Minute

// RedisCache backs the session cache with redis so that the last
// computed assessment survives a process restart.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, sessionTTL).Err()
}
