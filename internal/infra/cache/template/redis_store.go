package template

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore реализация Store поверх go-redis
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore создает хранилище кеша в Redis
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

// Get возвращает значение ключа или ErrCacheMiss
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get %s: %v", ErrStore, key, err)
	}
	return data, nil
}

// Set сохраняет значение с TTL
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set %s: %v", ErrStore, key, err)
	}
	return nil
}

// Incr атомарно увеличивает счетчик и возвращает новое значение
func (s *RedisStore) Incr(ctx context.Context, key string) (int64, error) {
	value, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: Incr %s: %v", ErrStore, key, err)
	}
	return value, nil
}
