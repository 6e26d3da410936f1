// Package cache stores computed dashboards for a short time.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sysmayal-backend/internal/config"
	"sysmayal-backend/internal/logger"
)

// Cache is a JSON value store with per-key TTL and prefix invalidation
type Cache interface {
	// Get decodes the value under key into dest and reports whether it was found
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

// Key prefixes, one per dashboard family
const (
	PrefixCompliance   = "dashboard:compliance:"
	PrefixCertificates = "dashboard:certificates:"
	PrefixPlans        = "dashboard:plans:"
	PrefixResearch     = "dashboard:research:"
	PrefixProjects     = "dashboard:projects:"
	PrefixReports      = "report:"
)

// New returns a Redis cache when REDIS_ADDR is set, otherwise an in-process cache
func New(cfg *config.Config) (Cache, error) {
	if cfg.RedisAddr == "" {
		return NewMemoryCache(), nil
	}
	redisCache, err := NewRedisCache(RedisConfig{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
	if err != nil {
		return nil, err
	}
	return redisCache, nil
}

// GetOrLoad returns the cached value under key, or calls load and caches its result.
// Cache failures are logged and never hide the loaded value.
func GetOrLoad[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	if c != nil {
		found, err := c.Get(ctx, key, &cached)
		if err != nil {
			logger.WithContext(ctx).WithField("key", key).Warnf("Cache read failed: %v", err)
		} else if found {
			return cached, nil
		}
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if c != nil {
		if err := c.Set(ctx, key, value, ttl); err != nil {
			logger.WithContext(ctx).WithField("key", key).Warnf("Cache write failed: %v", err)
		}
	}
	return value, nil
}

// Invalidate drops every key under the given prefixes, logging failures
func Invalidate(ctx context.Context, c Cache, prefixes ...string) {
	if c == nil {
		return
	}
	for _, prefix := range prefixes {
		if err := c.DeletePrefix(ctx, prefix); err != nil {
			logger.WithContext(ctx).WithField("prefix", prefix).Warnf("Cache invalidation failed: %v", err)
		}
	}
}

func encode(value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return data, nil
}
