package cache

import (
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache: miss")

// CacheService represents a generic byte cache
type CacheService interface {
	// Get retrieves a value from the cache
	Get(key string) ([]byte, error)

	// Set stores a value in the cache with an expiration time
	Set(key string, value []byte, expiration time.Duration) error

	// Delete removes a value from the cache
	Delete(key string) error
}

// New returns a memcache-backed service when addr is set and an in-process
// cache otherwise
func New(addr string) CacheService {
	if addr == "" {
		return NewMemoryCache()
	}
	return NewMemcacheService(addr)
}
