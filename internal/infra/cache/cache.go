// Package cache обертка над redis: кеш публичных списков провайдеров
// и хранилище языковых предпочтений пользователей.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client обертка над redis-клиентом
type Client struct {
	rdb *redis.Client
}

// New подключается к redis по URL (redis://host:port/db).
func New(ctx context.Context, redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%w: bad redis url: %v", ErrConnect, err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: ping: %v", ErrConnect, err)
	}

	return &Client{rdb: rdb}, nil
}

// Get возвращает значение по ключу. ErrCacheMiss если ключа нет.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("%w: Get - key %s: %v", ErrGet, key, err)
	}
	return val, nil
}

// Set сохраняет значение с TTL. ttl == 0 — без истечения.
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - key %s: %v", ErrSet, key, err)
	}
	return nil
}

// Delete удаляет ключи. Отсутствующие ключи не считаются ошибкой.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrSet, err)
	}
	return nil
}

// DeleteByPattern удаляет все ключи по шаблону (используется для инвалидации
// кеша списков после изменения провайдера).
func (c *Client) DeleteByPattern(ctx context.Context, pattern string) error {
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: DeleteByPattern - scan %s: %v", ErrSet, pattern, err)
	}
	return c.Delete(ctx, keys...)
}

// Close закрывает соединение с redis.
func (c *Client) Close() error {
	return c.rdb.Close()
}
