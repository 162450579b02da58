package nhl

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ScheduleTTL = 15 * time.Minute
	RosterTTL   = 6 * time.Hour
	BoxscoreTTL = 30 * time.Second
)

// Cache is a short-TTL JSON cache in front of the upstream API. A nil *Cache
// is valid and disables caching entirely.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	err = json.Unmarshal(data, dest)
	if err != nil {
		return false
	}

	return true
}

func (c *Cache) set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return errors.New("cache not configured")
	}

	return c.client.Ping(ctx).Err()
}
