package user

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedIDEntry wraps a user ID with version metadata for cache invalidation
type cachedIDEntry struct {
	Version  string    `json:"version"`
	UserID   string    `json:"user_id"`
	CachedAt time.Time `json:"cached_at"`
}

// CacheConfig sizes the username lookup cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache sizing
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// idCache maps usernames to user IDs. Only the identity is cached:
// balances change on every game and are always read from the store.
type idCache struct {
	lru    *expirable.LRU[string, *cachedIDEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newIDCache(cfg CacheConfig) *idCache {
	return &idCache{
		lru: expirable.NewLRU[string, *cachedIDEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns the cached ID for username.
// Entries written under an older schema version are dropped.
func (c *idCache) Get(username string) (string, bool) {
	entry, found := c.lru.Get(username)
	if !found {
		c.misses.Add(1)
		return "", false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(username)
		c.misses.Add(1)
		return "", false
	}
	c.hits.Add(1)
	return entry.UserID, true
}

func (c *idCache) Set(username, userID string) {
	c.lru.Add(username, &cachedIDEntry{
		Version:  CacheSchemaVersion,
		UserID:   userID,
		CachedAt: time.Now(),
	})
}

func (c *idCache) Invalidate(username string) {
	c.lru.Remove(username)
}

// GetStats returns hit and miss counters and the current entry count
func (c *idCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
