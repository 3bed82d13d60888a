package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/mapstl_api/internal/service"
)

// RedisCache хранит сериализованные результаты запросов с TTL.
// Данные обновляет только внешний ETL, поэтому устаревание ограничено TTL.
type RedisCache struct {
	redisClient redis.Cmdable
	ttl         time.Duration
}

func NewRedisCache(redisClient redis.Cmdable, ttl time.Duration) service.Cache {
	return &RedisCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get пытается получить результат из Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}
	return val, true, nil
}

// Set сохраняет результат в Redis
func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.redisClient.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}
