package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/airgourmethellas/catering-api/internal/pricing"
	"github.com/airgourmethellas/catering-api/internal/usecase"
)

// RedisSessionStore persists pricing-session state, one key per session id.
// Each in-progress order owns its own key; there is no shared cross-session
// structure, so concurrent orders can never read each other's prices.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string { return "ps:" + id }

func (s *RedisSessionStore) Save(ctx context.Context, st pricing.State) error {
	body, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(st.ID), body, s.ttl).Err()
}

func (s *RedisSessionStore) Load(ctx context.Context, id string) (pricing.State, bool, error) {
	body, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return pricing.State{}, false, nil
	}
	if err != nil {
		return pricing.State{}, false, err
	}
	var st pricing.State
	if err := json.Unmarshal(body, &st); err != nil {
		return pricing.State{}, false, err
	}
	return st, true, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}

var _ usecase.SessionStore = (*RedisSessionStore)(nil)
