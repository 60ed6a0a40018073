package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryVectorCache is an in-memory embedding vector cache with expiration,
// used when Redis is disabled. Entries expire after the configured TTL and a
// background sweep removes them.
type MemoryVectorCache struct {
	mu    sync.RWMutex
	items map[string]*vectorItem
	ttl   time.Duration
}

type vectorItem struct {
	vector     []float32
	expireTime time.Time
}

// NewMemoryVectorCache creates a new in-memory vector cache
func NewMemoryVectorCache(ttl time.Duration) *MemoryVectorCache {
	store := &MemoryVectorCache{
		items: make(map[string]*vectorItem),
		ttl:   ttl,
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired()

	return store
}

// Set stores a vector under a key with the cache TTL
func (mc *MemoryVectorCache) Set(ctx context.Context, key string, vector []float32) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.items[key] = &vectorItem{
		vector:     vector,
		expireTime: time.Now().Add(mc.ttl),
	}
}

// Get retrieves a vector by key; a miss or an expired entry returns false
func (mc *MemoryVectorCache) Get(ctx context.Context, key string) ([]float32, bool) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	item, exists := mc.items[key]
	if !exists {
		return nil, false
	}
	if time.Now().After(item.expireTime) {
		return nil, false
	}
	return item.vector, true
}

// Delete removes a key
func (mc *MemoryVectorCache) Delete(key string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	delete(mc.items, key)
}

// cleanupExpired periodically removes expired items
func (mc *MemoryVectorCache) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		mc.mu.Lock()
		now := time.Now()
		for key, item := range mc.items {
			if now.After(item.expireTime) {
				delete(mc.items, key)
			}
		}
		mc.mu.Unlock()
	}
}
