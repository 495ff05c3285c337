package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marrymk/marketplace-service/internal/domain"
)

const providerListKeyPrefix = "providers:list:"

// keyValueStore минимальный контракт redis-клиента, нужный кешам пакета
type keyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// ProviderListCache кеш публичного каталога провайдеров.
// Каталог читается на порядки чаще, чем изменяется; TTL короткий, плюс
// явная инвалидация после изменений модерации и профиля.
type ProviderListCache struct {
	client keyValueStore
	ttl    time.Duration
}

// NewProviderListCache создает кеш каталога с заданным TTL записей
func NewProviderListCache(client *Client, ttl time.Duration) *ProviderListCache {
	return &ProviderListCache{client: client, ttl: ttl}
}

// Get возвращает закешированный список по ключу фильтра. ErrCacheMiss если
// списка нет или он не десериализуется.
func (c *ProviderListCache) Get(ctx context.Context, filterKey string) ([]domain.Provider, error) {
	raw, err := c.client.Get(ctx, providerListKeyPrefix+filterKey)
	if err != nil {
		return nil, err
	}

	var providers []domain.Provider
	if err := json.Unmarshal([]byte(raw), &providers); err != nil {
		// Битую запись игнорируем, пусть перечитают из БД
		return nil, ErrCacheMiss
	}
	return providers, nil
}

// Set сохраняет список по ключу фильтра
func (c *ProviderListCache) Set(ctx context.Context, filterKey string, providers []domain.Provider) error {
	raw, err := json.Marshal(providers)
	if err != nil {
		return fmt.Errorf("%w: ProviderListCache.Set: %v", ErrMarshal, err)
	}
	return c.client.Set(ctx, providerListKeyPrefix+filterKey, string(raw), c.ttl)
}

// Invalidate сбрасывает все закешированные списки
func (c *ProviderListCache) Invalidate(ctx context.Context) error {
	return c.client.DeleteByPattern(ctx, providerListKeyPrefix+"*")
}
