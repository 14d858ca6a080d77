// Package cache provides a small TTL cache for derived dashboard snapshots.
// Freshness is time-based revalidation: entries simply expire and the next
// reader rebuilds them.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	data      T
	expiresAt time.Time
}

// TTL is a mutex-guarded map cache with per-entry expiry.
type TTL[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entry[T]
}

func NewTTL[T any](ttl time.Duration) *TTL[T] {
	return &TTL[T]{
		ttl:   ttl,
		items: make(map[string]entry[T]),
	}
}

// Get returns the cached value when present and unexpired.
func (c *TTL[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	it, ok := c.items[key]
	if !ok {
		return zero, false
	}
	if time.Now().After(it.expiresAt) {
		delete(c.items, key)
		return zero, false
	}
	return it.data, true
}

// Set stores a value with the cache's TTL.
func (c *TTL[T]) Set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[T]{data: data, expiresAt: time.Now().Add(c.ttl)}
}

// Delete removes a key.
func (c *TTL[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Size returns the current number of entries, expired ones included.
func (c *TTL[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// CleanExpired drops expired entries and reports how many were removed.
func (c *TTL[T]) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, it := range c.items {
		if now.After(it.expiresAt) {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}
