// Package cache provides a small process-local TTL cache used for
// denormalization data and derived statistics. Entries age out purely by
// TTL; correctness across multiple server processes is not guaranteed and
// not attempted here.
package cache

import (
	"sync"
	"time"
)

// Clock abstracts time.Now so TTL behavior is testable with a fake clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTLCache is a concurrency-safe map whose entries expire after a fixed TTL.
type TTLCache[V any] struct {
	mu    sync.RWMutex
	data  map[string]entry[V]
	ttl   time.Duration
	clock Clock
}

// NewTTLCache builds a cache with the given TTL. A nil clock defaults to the
// system clock.
func NewTTLCache[V any](ttl time.Duration, clock Clock) *TTLCache[V] {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TTLCache[V]{
		data:  make(map[string]entry[V]),
		ttl:   ttl,
		clock: clock,
	}
}

// Get returns the cached value for key if it exists and is fresh. Expired
// entries are removed on access.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if c.clock.Now().Sub(e.storedAt) >= c.ttl {
		c.mu.Lock()
		// Re-check under the write lock; another goroutine may have refreshed it.
		if cur, still := c.data[key]; still && c.clock.Now().Sub(cur.storedAt) >= c.ttl {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the current timestamp.
func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.data[key] = entry[V]{value: value, storedAt: c.clock.Now()}
	c.mu.Unlock()
}

// Invalidate removes the entry for key, if any.
func (c *TTLCache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *TTLCache[V]) Clear() {
	c.mu.Lock()
	c.data = make(map[string]entry[V])
	c.mu.Unlock()
}

// Len reports the number of stored entries, expired or not.
func (c *TTLCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// PruneExpired removes every entry older than the TTL and returns how many
// were dropped.
func (c *TTLCache[V]) PruneExpired() int {
	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	dropped := 0
	for key, e := range c.data {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.data, key)
			dropped++
		}
	}
	return dropped
}
