// Package cache is a thin, optional Redis layer. A nil *Client is a valid
// no-op cache, so callers never branch on whether caching is configured.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"trailhead/internal/config"
)

const defaultTTL = 30 * time.Second

type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns nil when no Redis address is configured.
func New(cfg *config.Config) *Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return &Client{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}),
		ttl: defaultTTL,
	}
}

// GetJSON reports whether key was present and decoded into v. Cache errors
// count as misses; the caller falls through to storage either way.
func (c *Client) GetJSON(ctx context.Context, key string, v any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// SetJSON stores v under key with the default TTL. Failures are dropped;
// a cold cache only costs a storage round trip.
func (c *Client) SetJSON(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, raw, c.ttl)
}
