package cache

import (
	"context"
	"log"
	"os"
	"time"

	"tirestore_checkout/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	defaultGuardTTL = 5 * time.Minute
	guardKeyPrefix  = "verify:claim:"
	defaultPoolSize = 20
	defaultMinIdle  = 5
)

// NewRedisClient builds the guard's Redis client from REDIS_URL.
// Returns nil when Redis is not configured; the verify usecase treats a nil
// guard as "skip the claim".
func NewRedisClient() *redis.Client {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Printf("[payment][cache] REDIS_URL not set; verification guard disabled")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:         redisURL,
		PoolSize:     defaultPoolSize,
		MinIdleConns: defaultMinIdle,
	})
}

// RedisVerificationGuard claims correlation ids with SETNX so only one
// verification request per correlation id reaches the gateway at a time.

type RedisVerificationGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IVerificationGuard = (*RedisVerificationGuard)(nil)

func NewRedisVerificationGuard(rdb *redis.Client) *RedisVerificationGuard {
	return &RedisVerificationGuard{rdb: rdb, ttl: defaultGuardTTL}
}

func (g *RedisVerificationGuard) Claim(ctx context.Context, correlationID string) (bool, error) {
	ok, err := g.rdb.SetNX(ctx, guardKeyPrefix+correlationID, "1", g.ttl).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (g *RedisVerificationGuard) Release(ctx context.Context, correlationID string) error {
	return g.rdb.Del(ctx, guardKeyPrefix+correlationID).Err()
}
