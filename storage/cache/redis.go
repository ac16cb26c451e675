package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kv-base-hack/coin-whatif/common"
	"github.com/redis/go-redis/v9"
)

const coinsKey = "coingecko_coins"

var ErrMiss = errors.New("cache miss")

// RedisCache keeps the normalized coin catalog in redis so restarts within
// the ttl do not hit the provider.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisCache) GetCoins(ctx context.Context) ([]common.Coin, error) {
	raw, err := r.client.Get(ctx, coinsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("get %s: %w", coinsKey, err)
	}

	var coins []common.Coin
	if err = json.Unmarshal(raw, &coins); err != nil {
		return nil, fmt.Errorf("parse %s: %w", coinsKey, err)
	}
	return coins, nil
}

func (r *RedisCache) SetCoins(ctx context.Context, coins []common.Coin) error {
	raw, err := json.Marshal(coins)
	if err != nil {
		return err
	}
	if err = r.client.Set(ctx, coinsKey, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", coinsKey, err)
	}
	return nil
}
