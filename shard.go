package lru

import (
	"fmt"
)

// ShardedCache is a thread-safe fixed size cache that spreads keys over
// independent Cache shards, each with its own lock. Eviction picks the least
// recently used entry of the shard the new key hashes to, not of the whole
// cache.
type ShardedCache[K comparable, V any] struct {
	// Fragmentation can reduce lock contention, but the hash function affects efficiency
	shards []*Cache[K, V]
	hash   Hasher[K]
}

// NewSharded creates a cache of the given total capacity split over n
// shards. n is lowered to capacity when larger. Every shard receives
// capacity/n slots and the first one also takes the remainder.
func NewSharded[K comparable, V any](capacity, n int, hash Hasher[K], opts ...Option[K, V]) (*ShardedCache[K, V], error) {
	if capacity <= 0 || n <= 0 {
		return nil, fmt.Errorf("%w: capacity and shard count must be positive, got %d and %d",
			ErrInvalidArgument, capacity, n)
	}
	if hash == nil {
		return nil, fmt.Errorf("%w: nil hasher", ErrInvalidArgument)
	}
	if capacity < n {
		n = capacity
	}

	sc := &ShardedCache[K, V]{
		shards: make([]*Cache[K, V], n),
		hash:   hash,
	}
	for i := range sc.shards {
		size := capacity / n
		if i == 0 {
			size += capacity % n
		}
		shard, err := New[K, V](size, opts...)
		if err != nil {
			return nil, err
		}
		sc.shards[i] = shard
	}
	return sc, nil
}

func (c *ShardedCache[K, V]) bucket(key K) *Cache[K, V] {
	if len(c.shards) == 1 {
		return c.shards[0]
	}
	return c.shards[c.hash(key)%uint64(len(c.shards))]
}

// Put adds or updates a value in the shard owning key.
func (c *ShardedCache[K, V]) Put(key K, value V) (PutResult, error) {
	if err := validateEntry(key, value); err != nil {
		return 0, err
	}
	return c.bucket(key).Put(key, value)
}

// Get looks up a key's value and promotes it within its shard.
func (c *ShardedCache[K, V]) Get(key K) (value V, ok bool) {
	return c.bucket(key).Get(key)
}

// Contains checks if a key is in the cache, without updating the
// recent-ness.
func (c *ShardedCache[K, V]) Contains(key K) bool {
	return c.bucket(key).Contains(key)
}

// Peek returns the key value (or undefined if not found) without updating
// the "recently used"-ness of the key.
func (c *ShardedCache[K, V]) Peek(key K) (value V, ok bool) {
	return c.bucket(key).Peek(key)
}

// Remove removes the provided key from the cache.
func (c *ShardedCache[K, V]) Remove(key K) (present bool) {
	return c.bucket(key).Remove(key)
}

// Clear empties every shard.
func (c *ShardedCache[K, V]) Clear() {
	for _, shard := range c.shards {
		shard.Clear()
	}
}

// Keys returns the keys of every shard, each shard from oldest to newest.
func (c *ShardedCache[K, V]) Keys() (ret []K) {
	for _, shard := range c.shards {
		ret = append(ret, shard.Keys()...)
	}
	return ret
}

// Len returns the number of items in the cache. Shards are read one after
// another, so the total is not a single atomic snapshot under concurrent
// writes.
func (c *ShardedCache[K, V]) Len() (ret int) {
	for _, shard := range c.shards {
		ret += shard.Len()
	}
	return ret
}

// Cap returns the total capacity of all shards.
func (c *ShardedCache[K, V]) Cap() (ret int) {
	for _, shard := range c.shards {
		ret += shard.Cap()
	}
	return ret
}

// IsEmpty reports whether every shard is empty.
func (c *ShardedCache[K, V]) IsEmpty() bool {
	for _, shard := range c.shards {
		if !shard.IsEmpty() {
			return false
		}
	}
	return true
}

// Shards returns the number of shards.
func (c *ShardedCache[K, V]) Shards() int {
	return len(c.shards)
}

// Stats returns the counters summed over all shards.
func (c *ShardedCache[K, V]) Stats() (ret Stats) {
	for _, shard := range c.shards {
		ret = ret.add(shard.Stats())
	}
	return ret
}
