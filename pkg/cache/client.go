package cache

import (
	"context"
	"fmt"
	"time"

	"realestate-backoffice/pkg/config"
	"realestate-backoffice/pkg/logger"
	"realestate-backoffice/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// Cache stores JSON encoded values in Redis.
type Cache struct {
	client CacheClient
	ttl    time.Duration
}

// New wraps an existing client, e.g. a fake in tests.
func New(client CacheClient, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// InitRedis connects to the configured Redis instance and verifies it answers.
func InitRedis(cfg *config.Config) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := client.Ping(ctx).Result()
	metrics.RedisOperationDuration.WithLabelValues("ping").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("ping").Inc()
		client.Close()
		logger.GlobalLogger.Errorf("failed to connect to Redis: %v", err)
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	logger.GlobalLogger.Println("Redis connected successfully")
	return New(client, cfg.Redis.TTL), nil
}

// Ping reports whether Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	start := time.Now()
	err := c.client.Ping(ctx).Err()
	metrics.RedisOperationDuration.WithLabelValues("ping").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("ping").Inc()
		return NewCacheError("ping", err, true)
	}
	return nil
}

func (c *Cache) Close() {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Close(); err != nil {
		logger.GlobalLogger.Errorf("error closing Redis: %v", err)
		return
	}
	logger.GlobalLogger.Println("Redis connection closed")
}
