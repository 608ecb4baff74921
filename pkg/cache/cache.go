// Package cache wraps an optional Redis client used to cache rendered public
// invitation HTML. The cache is disposable: the layout of record lives in
// memory and every mutation invalidates the affected entries, so a disabled
// or unreachable Redis only costs re-rendering.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// defaultOperationTimeout is the timeout for individual Redis operations
	defaultOperationTimeout = 5 * time.Second

	renderTTL = 10 * time.Minute
)

type Cache struct {
	client  *redis.Client
	enabled bool
}

func NewCache(addr string, enable bool) (*Cache, error) {
	if !enable {
		return &Cache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{
		client:  client,
		enabled: true,
	}, nil
}

func (c *Cache) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultOperationTimeout)
}

func (c *Cache) Set(key, value string, expiration time.Duration) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.Set(ctx, key, value, expiration).Err()
}

func (c *Cache) Get(key string) (string, error) {
	if !c.enabled {
		return "", fmt.Errorf("cache disabled")
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("key not found")
	} else if err != nil {
		return "", err
	}
	return val, nil
}

func (c *Cache) Delete(key string) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.Del(ctx, key).Err()
}

func (c *Cache) DeletePattern(pattern string) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Close() error {
	if !c.enabled {
		return nil
	}
	return c.client.Close()
}

// CacheRender stores the rendered public HTML for a layout and device.
func (c *Cache) CacheRender(layoutID string, device string, html string) error {
	return c.Set(fmt.Sprintf("render:%s:%s", layoutID, device), html, renderTTL)
}

// GetCachedRender fetches a previously rendered public page.
func (c *Cache) GetCachedRender(layoutID string, device string) (string, error) {
	return c.Get(fmt.Sprintf("render:%s:%s", layoutID, device))
}

// InvalidateRender drops every cached render of a layout. Called on every
// layout mutation.
func (c *Cache) InvalidateRender(layoutID string) error {
	return c.DeletePattern(fmt.Sprintf("render:%s:*", layoutID))
}
