package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"realestate-backoffice/pkg/logger"
	"realestate-backoffice/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// Set stores value as JSON under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_marshal").Inc()
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return NewCacheError("marshal", err, false)
	}
	err = c.client.Set(ctx, key, data, c.ttl).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return NewCacheError("set", err, true)
	}
	return nil
}

// Get loads key into dest. A missing key yields ErrMiss.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := c.client.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if errors.Is(err, redis.Nil) {
		metrics.CacheMissesTotal.Inc()
		return ErrMiss
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return NewCacheError("get", err, true)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_unmarshal").Inc()
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return NewCacheError("unmarshal", err, false)
	}
	metrics.CacheHitsTotal.Inc()
	return nil
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	start := time.Now()
	err := c.client.Del(ctx, keys...).Err()
	metrics.RedisOperationDuration.WithLabelValues("delete").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("delete").Inc()
		logger.GlobalLogger.Errorf("failed to delete keys %v: %v", keys, err)
		return NewCacheError("delete", err, true)
	}
	return nil
}

// DropReferenceLists forgets the cached lookup lists so the next read reloads
// them from the database. Run at startup, after seeding or migrations.
func DropReferenceLists(ctx context.Context, c CacheOperations) error {
	return c.Delete(ctx, ReferenceListKeys()...)
}
