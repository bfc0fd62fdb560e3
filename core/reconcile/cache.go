package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheEntry is one cached value with the time it was built.
type cacheEntry[V any] struct {
	value V
	built time.Time
}

// Cache is a TTL cache keyed by string, with stampede protection on rebuild.
// A zero TTL disables caching: every Get rebuilds.
//
// Each key carries a generation bumped by Invalidate. A build only stores its
// value if the generation it started under is still current, so a build racing
// an invalidation never caches data read before it.
type Cache[V any] struct {
	ttl         time.Duration
	mu          sync.RWMutex
	entries     map[string]cacheEntry[V]
	generations map[string]uint64
	sf          singleflight.Group
	now         func() time.Time
}

// NewCache creates a cache whose entries expire after ttl.
func NewCache[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		entries:     make(map[string]cacheEntry[V]),
		generations: make(map[string]uint64),
		now:         time.Now,
	}
}

func (c *Cache[V]) fresh(key string) (V, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.ttl <= 0 || c.now().Sub(entry.built) > c.ttl {
		var zero V
		return zero, false
	}
	return entry.value, true
}

// GetOrBuild returns the cached value for key, or builds and stores a new one
// if it is missing or expired. Concurrent builds for the same key are collapsed.
func (c *Cache[V]) GetOrBuild(ctx context.Context, key string, build func(ctx context.Context) (V, error)) (V, error) {
	if v, ok := c.fresh(key); ok {
		return v, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Another caller may have finished building while we waited
		if v, ok := c.fresh(key); ok {
			return v, nil
		}

		c.mu.RLock()
		gen := c.generations[key]
		c.mu.RUnlock()

		v, err := build(ctx)
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			if c.generations[key] == gen {
				c.entries[key] = cacheEntry[V]{value: v, built: c.now()}
			}
			c.mu.Unlock()
		}
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	return result.(V), nil
}

// Invalidate drops the entry for key and discards any build already in flight.
// Callers arriving afterwards start a fresh build instead of joining the old one.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.generations[key]++
	c.mu.Unlock()
	c.sf.Forget(key)
}
