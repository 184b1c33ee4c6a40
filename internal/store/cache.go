package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix  = "historial:"
	historyCacheTTL = 5 * time.Minute
)

// Cache is a read-through cache for history listings. A nil *Cache is valid
// and means "no caching": every method degrades to a no-op, so the history
// store works identically with or without Redis configured.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	val, err := c.client.Get(ctx, cacheKeyPrefix+key).Result()
	if err != nil {
		return false // miss or Redis failure, either way fall through to Mongo
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	// Best effort; a failed cache write never fails the request.
	_ = c.client.Set(ctx, cacheKeyPrefix+key, data, historyCacheTTL).Err()
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = cacheKeyPrefix + k
	}
	_ = c.client.Del(ctx, prefixed...).Err()
}

// historyCacheKey builds the cache key for one listing. The unfiltered
// (administrative) listing and owner-scoped listings use disjoint key shapes
// so that no username, whatever it is, can alias the admin view.
func historyCacheKey(domain Domain, owner string) string {
	if owner == "" {
		return string(domain) + ":all"
	}
	return string(domain) + ":owner:" + owner
}
