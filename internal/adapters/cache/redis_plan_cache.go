package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/obs"
)

const planKeyPrefix = "loadplan:plan:"

// RedisPlanCache keeps encoded plans in Redis with a fixed TTL.
// A zero TTL keeps entries until Redis evicts them.
type RedisPlanCache struct {
	Client redis.UniversalClient
	TTL    time.Duration
}

func NewRedisPlanCache(client redis.UniversalClient, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{Client: client, TTL: ttl}
}

func (r *RedisPlanCache) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.redis.Get")(&err)

	if r.Client == nil {
		return nil, false, errors.New("plan cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false, errors.New("get plan cache: key must not be empty")
	}

	payload, err := r.Client.Get(ctx, planKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: redis get: %w", err)
	}

	return payload, true, nil
}

func (r *RedisPlanCache) Put(ctx context.Context, key string, payload []byte) (err error) {
	defer obs.Time(ctx, "plan.cache.redis.Put")(&err)

	if r.Client == nil {
		return errors.New("plan cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert plan cache: key must not be empty")
	}

	if err := r.Client.Set(ctx, planKeyPrefix+key, payload, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert plan cache key=%q: redis set: %w", key, err)
	}

	return nil
}
