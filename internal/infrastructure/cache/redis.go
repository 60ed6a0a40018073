package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-coach/pkg/config"
)

// NewRedisClient creates a Redis client and verifies the connection
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Println("✅ Redis connected successfully")
	return client, nil
}

// RedisVectorCache stores embedding vectors in Redis with a TTL. Cache
// failures are logged and swallowed: a broken cache is a miss, never a
// scoring failure.
type RedisVectorCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisVectorCache creates a Redis-backed vector cache
func NewRedisVectorCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisVectorCache {
	return &RedisVectorCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get retrieves a vector by key
func (rc *RedisVectorCache) Get(ctx context.Context, key string) ([]float32, bool) {
	raw, err := rc.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) && rc.logger != nil {
			rc.logger.Warn("⚠️ Vector cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var vector []float32
	if err := json.Unmarshal(raw, &vector); err != nil {
		if rc.logger != nil {
			rc.logger.Warn("⚠️ Vector cache entry corrupt", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return vector, true
}

// Set stores a vector under a key with the cache TTL
func (rc *RedisVectorCache) Set(ctx context.Context, key string, vector []float32) {
	raw, err := json.Marshal(vector)
	if err != nil {
		return
	}
	if err := rc.client.Set(ctx, key, raw, rc.ttl).Err(); err != nil && rc.logger != nil {
		rc.logger.Warn("⚠️ Vector cache write failed", zap.Error(err))
	}
}
