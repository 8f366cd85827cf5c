package cache

import (
	"sync"
	"time"
)

// cacheItem represents a single item in the cache with expiration
type cacheItem struct {
	value      []byte
	expiration time.Time
}

// MemoryCache is a thread-safe in-process cache with TTL support
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
	now   func() time.Time
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]cacheItem),
		now:  time.Now,
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(key string) ([]byte, error) {
	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists || c.now().After(item.expiration) {
		return nil, ErrCacheMiss
	}

	out := make([]byte, len(item.value))
	copy(out, item.value)
	return out, nil
}

// Set stores a copy of value with TTL
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.purgeExpired()
	c.data[key] = cacheItem{
		value:      stored,
		expiration: c.now().Add(ttl),
	}
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Size returns the current number of items in the cache
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// purgeExpired drops expired entries; callers hold the write lock
func (c *MemoryCache) purgeExpired() {
	now := c.now()
	for key, item := range c.data {
		if now.After(item.expiration) {
			delete(c.data, key)
		}
	}
}
