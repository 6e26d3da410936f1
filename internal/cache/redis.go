package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sysmayal-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

const defaultScanBatchSize = 100

// RedisConfig holds the Redis connection settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisCache implements Cache on a Redis server
type RedisCache struct {
	client     *redis.Client
	ownsClient bool
	log        *logger.Logger
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{client: client, ownsClient: true, log: logger.ForComponent("cache")}, nil
}

// NewRedisCacheWithClient wraps an existing client; the caller keeps ownership of it
func NewRedisCacheWithClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, log: logger.ForComponent("cache")}
}

// Get decodes the value under key into dest
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.log.WithField("key", key).Debug("Cache miss")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// Corrupted entry
		_ = c.client.Del(ctx, key)
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	c.log.WithField("key", key).Debug("Cache hit")
	return true, nil
}

// Set stores value under key for ttl
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := encode(value)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}

// DeletePrefix removes every key starting with prefix
func (c *RedisCache) DeletePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	var deletedCount int64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, prefix+"*", defaultScanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}

		if len(keys) > 0 {
			deleted, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return fmt.Errorf("failed to delete cache keys: %w", err)
			}
			deletedCount += deleted
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	c.log.WithFields(map[string]interface{}{"prefix": prefix, "deleted_count": deletedCount}).Debug("Invalidated cache keys")
	return nil
}

// Close releases the client when this cache created it
func (c *RedisCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}

// Ping checks the Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
