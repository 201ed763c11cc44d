package lru

import (
	"sync"

	"github.com/venkatsvpr/lrucache/simplelru"
)

// PutResult tells whether Put stored a new key or updated a resident one.
type PutResult int

const (
	// Inserted means the key was not resident and has been added.
	Inserted PutResult = iota + 1
	// Updated means the key was resident and its value was replaced.
	Updated
)

func (r PutResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	}
	return "unknown"
}

// Cache is a thread-safe fixed size LRU cache.
type Cache[K comparable, V any] struct {
	lru   *simplelru.LRU[K, V]
	clone func(V) V
	stats Stats
	lock  sync.RWMutex
}

// Option configures a Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithCloner sets the function used to copy values on the way into the cache
// (Put) and on the way out (Get, Peek, GetOldest, Values). Use it for
// reference types such as slices or maps so callers cannot alias storage
// owned by the cache. The cache never mutates a stored value in place, so
// clone is always invoked outside the lock.
func WithCloner[K comparable, V any](clone func(V) V) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.clone = clone
	}
}

// New creates an LRU of the given capacity.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	lru, err := simplelru.NewLRU[K, V](capacity)
	if err != nil {
		return nil, err
	}
	c := &Cache[K, V]{lru: lru}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Put adds or updates a value. A new key put into a full cache evicts the
// least recently used entry first. Either way the key becomes the most
// recently used.
func (c *Cache[K, V]) Put(key K, value V) (PutResult, error) {
	if err := validateEntry(key, value); err != nil {
		return 0, err
	}
	value = c.copyValue(value)

	c.lock.Lock()
	defer c.lock.Unlock()
	if c.lru.Contains(key) {
		if _, err := c.lru.Add(key, value); err != nil {
			return 0, err
		}
		c.stats.Updates++
		return Updated, nil
	}
	evicted, err := c.lru.Add(key, value)
	if err != nil {
		return 0, err
	}
	if evicted {
		c.stats.Evictions++
	}
	c.stats.Inserts++
	return Inserted, nil
}

// Get looks up a key's value from the cache and marks it as the most
// recently used. A miss has no side effects besides the miss counter.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.lock.Lock()
	value, ok = c.lru.Get(key)
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.lock.Unlock()
	if !ok {
		return value, false
	}
	return c.copyValue(value), true
}

// Contains checks if a key is in the cache, without updating the
// recent-ness.
func (c *Cache[K, V]) Contains(key K) bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.lru.Contains(key)
}

// Peek returns the key value (or undefined if not found) without updating
// the "recently used"-ness of the key.
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	c.lock.RLock()
	value, ok = c.lru.Peek(key)
	c.lock.RUnlock()
	if ok {
		value = c.copyValue(value)
	}
	return value, ok
}

// Remove removes the provided key from the cache, returning if the
// key was contained.
func (c *Cache[K, V]) Remove(key K) (present bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if present = c.lru.Remove(key); present {
		c.stats.Removals++
	}
	return present
}

// Clear empties the cache. The capacity is unchanged.
func (c *Cache[K, V]) Clear() {
	c.lock.Lock()
	c.lru.Purge()
	c.lock.Unlock()
}

// GetOldest returns the least recently used entry without promoting it.
func (c *Cache[K, V]) GetOldest() (key K, value V, ok bool) {
	c.lock.RLock()
	key, value, ok = c.lru.GetOldest()
	c.lock.RUnlock()
	if ok {
		value = c.copyValue(value)
	}
	return key, value, ok
}

// Keys returns a slice of the keys in the cache, from oldest to newest.
func (c *Cache[K, V]) Keys() []K {
	c.lock.RLock()
	keys := c.lru.Keys()
	c.lock.RUnlock()
	return keys
}

// Values returns a slice of the values in the cache, from oldest to newest.
func (c *Cache[K, V]) Values() []V {
	c.lock.RLock()
	values := c.lru.Values()
	c.lock.RUnlock()
	if c.clone != nil {
		for i := range values {
			values[i] = c.clone(values[i])
		}
	}
	return values
}

// Len returns the number of items in the cache.
func (c *Cache[K, V]) Len() int {
	c.lock.RLock()
	length := c.lru.Len()
	c.lock.RUnlock()
	return length
}

// Cap returns the capacity of the cache.
func (c *Cache[K, V]) Cap() int {
	return c.lru.Cap()
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.Len() == 0
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.stats
}

func (c *Cache[K, V]) copyValue(v V) V {
	if c.clone == nil {
		return v
	}
	return c.clone(v)
}
