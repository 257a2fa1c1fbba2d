package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/airgourmethellas/catering-api/internal/pricing"
	"github.com/airgourmethellas/catering-api/internal/usecase"
)

const catalogKey = "catalog:menu"

// RedisCatalogCache fronts the menu table for the hot browse path.
type RedisCatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCatalogCache(rdb *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCatalogCache) Get(ctx context.Context) ([]pricing.MenuItem, bool, error) {
	body, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var items []pricing.MenuItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (c *RedisCatalogCache) Set(ctx context.Context, items []pricing.MenuItem) error {
	body, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, catalogKey, body, c.ttl).Err()
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, catalogKey).Err()
}

var _ usecase.CatalogCache = (*RedisCatalogCache)(nil)
