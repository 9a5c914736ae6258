package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryCache is the in-process cache backend, the default for single
// instance deployments. Values are stored as-is, so the timeline document
// pointer the service caches is the pointer it gets back.
type MemoryCache struct {
	store *cache.Cache
}

var _ Cache = (*MemoryCache)(nil)

func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{store: cache.New(defaultTTL, cleanupInterval)}
}

func (m *MemoryCache) Set(key string, value any, ttl time.Duration) {
	m.store.Set(key, value, ttl)
}

func (m *MemoryCache) Get(key string) (any, bool) {
	return m.store.Get(key)
}

func (m *MemoryCache) Delete(key string) {
	m.store.Delete(key)
}

// Close is a no-op; the janitor goroutine stops with the process.
func (m *MemoryCache) Close() error {
	return nil
}
