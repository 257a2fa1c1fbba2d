package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/airgourmethellas/catering-api/internal/usecase"
)

// RedisOrderCache keeps a best-effort copy of order status for cheap polling
// by the client portal.
type RedisOrderCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisOrderCache(rdb *redis.Client, ttl time.Duration) *RedisOrderCache {
	return &RedisOrderCache{rdb: rdb, ttl: ttl}
}

func (r *RedisOrderCache) SetStatus(ctx context.Context, orderID string, status string) error {
	return r.rdb.Set(ctx, "order:status:"+orderID, status, r.ttl).Err()
}

var _ usecase.OrderCache = (*RedisOrderCache)(nil)
