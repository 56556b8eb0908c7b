package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/covet-app/covet/internal/domain"
)

// DefaultSearchTTL bounds how stale a cached search result may get.
const DefaultSearchTTL = 60 * time.Second

// SearchCache stores user-directory search results for a short TTL. It is a
// read accelerator only: misses and redis failures both fall through to the
// document store.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSearchCache creates a cache with the given TTL (DefaultSearchTTL if 0).
func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	if ttl <= 0 {
		ttl = DefaultSearchTTL
	}
	return &SearchCache{client: client, ttl: ttl}
}

// Get returns the cached result for a caller+query pair, and whether the
// lookup hit.
func (c *SearchCache) Get(ctx context.Context, callerID, query string) ([]domain.UserSummary, bool) {
	data, err := c.client.Get(ctx, SearchKey(callerID, query)).Bytes()
	if err != nil {
		// redis.Nil and an unavailable cache are both misses.
		return nil, false
	}

	var users []domain.UserSummary
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, false
	}
	return users, true
}

// Set caches a search result, best effort.
func (c *SearchCache) Set(ctx context.Context, callerID, query string, users []domain.UserSummary) {
	data, err := json.Marshal(users)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, SearchKey(callerID, query), data, c.ttl).Err()
}
