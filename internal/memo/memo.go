// Package memo provides a concurrency-safe get-or-compute cache keyed by string.
package memo

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes values by key.
//
// Entries live until Clear is called; there is no eviction.
// Cache uses singleflight to collapse concurrent computations of the
// same key, so at most one compute function runs per key while callers
// asking for different keys proceed independently.
//
// The zero value is ready to use. A Cache must not be copied after first use.
type Cache[V any] struct {
	entries sync.Map // string -> V
	group   singleflight.Group
}

// GetOrCompute returns the value stored for key, computing and storing it
// with fn on a miss.
//
// Concurrent callers for a key that is being computed wait for the
// in-flight result and receive the same value. Errors from fn are returned
// to every waiter and are not stored.
func (c *Cache[V]) GetOrCompute(key string, fn func() (V, error)) (V, error) {
	if v, ok := c.load(key); ok {
		return v, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		// Another caller may have stored key between our load and
		// acquiring the singleflight slot.
		if v, ok := c.load(key); ok {
			return v, nil
		}

		v, err := fn()
		if err != nil {
			return nil, err
		}
		c.entries.Store(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	v, _ := result.(V) //nolint:errcheck // type assertion always succeeds when err is nil
	return v, nil
}

// Get returns the value stored for key without computing it.
// It only observes the cache, for tests; callers go through GetOrCompute.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.load(key)
}

// Len reports the number of stored entries.
// It walks the whole map and exists for tests.
func (c *Cache[V]) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.entries.Clear()
}

func (c *Cache[V]) load(key string) (V, bool) {
	v, ok := c.entries.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true //nolint:errcheck,forcetypeassert // only V is ever stored
}
