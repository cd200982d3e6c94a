// Package cache provides a small bounded key/value store with
// least-recently-used eviction, shared by the rendering pipeline's
// identity-keyed registries and available to callers.
package cache

import "sync"

// DefaultCapacity is used when NewBounded is given a capacity below one.
const DefaultCapacity = 20

// Bounded is a generic thread-safe fixed-capacity cache.
// When an insert would exceed the capacity, the least-recently-used
// entry is evicted first. Both Set and Get refresh an entry's recency.
//
// Bounded is safe for concurrent use.
// Bounded must not be copied after creation (has mutex).
type Bounded[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*boundedEntry[V]
	capacity int
	tick     int64 // Monotonic access counter
}

// boundedEntry holds a cached value with its access time.
type boundedEntry[V any] struct {
	value V
	atime int64 // Access time (tick value)
}

// NewBounded creates a bounded cache holding at most capacity entries.
// A capacity below one falls back to DefaultCapacity.
func NewBounded[K comparable, V any](capacity int) *Bounded[K, V] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Bounded[K, V]{
		entries:  make(map[K]*boundedEntry[V], capacity),
		capacity: capacity,
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
// A hit marks the entry most-recently-used.
func (c *Bounded[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.tick++
	entry.atime = c.tick

	return entry.value, true
}

// Set stores a value in the cache and marks it most-recently-used.
// If the key is new and the cache is at capacity, the least-recently-used
// entry is evicted first.
func (c *Bounded[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.capacity {
		c.evictOldest()
	}

	c.tick++
	c.entries[key] = &boundedEntry[V]{
		value: value,
		atime: c.tick,
	}
}

// Remove deletes an entry if present. Removing a missing key is a no-op.
func (c *Bounded[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of entries currently stored.
func (c *Bounded[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all entries from the cache.
func (c *Bounded[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*boundedEntry[V], c.capacity)
}

// evictOldest removes the entry with the lowest access time.
// Caller must hold c.mu.
func (c *Bounded[K, V]) evictOldest() {
	var oldestKey K
	oldestTime := int64(-1)

	for key, entry := range c.entries {
		if oldestTime == -1 || entry.atime < oldestTime {
			oldestKey = key
			oldestTime = entry.atime
		}
	}

	if oldestTime != -1 {
		delete(c.entries, oldestKey)
	}
}
