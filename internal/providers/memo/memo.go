// Package memo caches upstream lookups in memory for a fixed time and
// collapses concurrent identical lookups into one call.
package memo

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value   V
	expires time.Time
}

// Cache is safe for concurrent use. The zero value is not usable; use New.
type Cache[V any] struct {
	ttl time.Duration
	now func() time.Time
	sfg singleflight.Group

	mu        sync.Mutex
	entries   map[string]entry[V]
	lastSweep time.Time
}

// New returns a cache whose entries live for ttl. A non-positive ttl disables
// storage but keeps call collapsing.
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{ttl: ttl, now: time.Now, entries: map[string]entry[V]{}}
}

// Do returns the cached value for key or runs fn to produce it. Errors are not cached.
func (c *Cache[V]) Do(ctx context.Context, key string, fn func(context.Context) (V, error)) (V, error) {
	if v, ok := c.get(key); ok {
		return v, nil
	}
	res, err, _ := c.sfg.Do(key, func() (any, error) {
		v, err := fn(ctx)
		if err != nil {
			return v, err
		}
		c.set(key, v)
		return v, nil
	})
	v, _ := res.(V)
	return v, err
}

func (c *Cache[V]) get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if !c.now().Before(e.expires) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[V]) set(key string, v V) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	// Expired entries are swept at most once per ttl so keys that are never
	// read again do not accumulate.
	if now.Sub(c.lastSweep) >= c.ttl {
		for k, e := range c.entries {
			if !now.Before(e.expires) {
				delete(c.entries, k)
			}
		}
		c.lastSweep = now
	}
	c.entries[key] = entry[V]{value: v, expires: now.Add(c.ttl)}
}

// Len reports the number of stored entries, including expired ones not yet evicted.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
