package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	countedKeyPrefix = "counted:"
	countedClaimTTL  = 7 * 24 * time.Hour
)

// claimCountedScript sets the claim only when the key is free or
// already held by the same holder, so confirming twice is harmless
// but two sessions can never both own one tag.
var claimCountedScript = redis.NewScript(`
local key = KEYS[1]
local holder = ARGV[1]
local ttl = tonumber(ARGV[2])

local current = redis.call('GET', key)
if not current or current == holder then
	redis.call('SET', key, holder, 'EX', ttl)
	return 1
end

return 0
`)

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) ClaimCounted(ctx context.Context, epc, holder string) (bool, error) {
	key := countedKeyPrefix + epc

	result, err := claimCountedScript.Run(ctx, r.client, []string{key}, holder, int(countedClaimTTL.Seconds())).Int()
	if err != nil {
		return false, err
	}

	return result == 1, nil
}

func (r *RedisAdapter) CountedBy(ctx context.Context, epc string) (string, error) {
	holder, err := r.client.Get(ctx, countedKeyPrefix+epc).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return holder, nil
}

func (r *RedisAdapter) ReleaseCounted(ctx context.Context, epc string) error {
	return r.client.Del(ctx, countedKeyPrefix+epc).Err()
}
