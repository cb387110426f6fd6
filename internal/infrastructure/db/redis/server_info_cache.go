package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quantumstudy/study-api/internal/core/domain"
)

const (
	serverInfoKey        = "serverinfo:v1"
	defaultServerInfoTTL = 5 * time.Minute
)

// kvStore is the part of the go-redis client the cache uses.
type kvStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ServerInfoCache stores the resolved server info as JSON under a single key.
type ServerInfoCache struct {
	client kvStore
	ttl    time.Duration
}

// NewServerInfoCache creates a ServerInfoCache. A non-positive ttl falls back
// to five minutes.
func NewServerInfoCache(client *redis.Client, ttl time.Duration) *ServerInfoCache {
	return newServerInfoCache(client, ttl)
}

func newServerInfoCache(client kvStore, ttl time.Duration) *ServerInfoCache {
	if ttl <= 0 {
		ttl = defaultServerInfoTTL
	}
	return &ServerInfoCache{client: client, ttl: ttl}
}

// Get returns the cached server info, or (nil, nil) on a miss. A corrupted
// entry is reported as a miss.
func (c *ServerInfoCache) Get(ctx context.Context) (*domain.ServerInfo, error) {
	data, err := c.client.Get(ctx, serverInfoKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("server info cache get: %w", err)
	}

	var info domain.ServerInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, nil //nolint:nilerr
	}
	return &info, nil
}

func (c *ServerInfoCache) Set(ctx context.Context, info domain.ServerInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal server info: %w", err)
	}
	return c.client.Set(ctx, serverInfoKey, data, c.ttl).Err()
}

// Invalidate drops the cached entry so the next read goes to the store.
func (c *ServerInfoCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, serverInfoKey).Err()
}
