package simplelru

import (
	"fmt"
)

// LRU implements a non-thread safe fixed size LRU cache
type LRU[K comparable, V any] struct {
	size      int
	evictList *List[K, V]
	items     map[K]*Entry[K, V]
}

// NewLRU constructs an LRU of the given size
func NewLRU[K comparable, V any](size int) (*LRU[K, V], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: must provide a positive size, got %d", ErrInvalidArgument, size)
	}
	c := &LRU[K, V]{
		size:      size,
		evictList: NewList[K, V](),
		items:     make(map[K]*Entry[K, V], size),
	}
	return c, nil
}

// Purge is used to completely clear the cache.
func (c *LRU[K, V]) Purge() {
	clear(c.items)
	c.evictList.Init()
}

// Add adds a value to the cache. Returns true if an eviction occurred.
// Updating a resident key never evicts.
func (c *LRU[K, V]) Add(key K, value V) (evicted bool, err error) {
	// Check for existing item
	if ent, ok := c.items[key]; ok {
		c.evictList.MoveToFront(ent)
		ent.Value = value
		return false, nil
	}

	// Make room before linking the new item so Len never exceeds size.
	if c.evictList.Len() >= c.size {
		if _, _, err := c.evictOldest(); err != nil {
			return false, err
		}
		evicted = true
	}

	c.items[key] = c.evictList.PushFront(key, value)
	return evicted, nil
}

// Get looks up a key's value from the cache.
func (c *LRU[K, V]) Get(key K) (value V, ok bool) {
	if ent, ok := c.items[key]; ok {
		c.evictList.MoveToFront(ent)
		return ent.Value, true
	}
	return
}

// Contains checks if a key is in the cache, without updating the recent-ness
// or deleting it for being stale.
func (c *LRU[K, V]) Contains(key K) (ok bool) {
	_, ok = c.items[key]
	return ok
}

// Peek returns the key value (or undefined if not found) without updating
// the "recently used"-ness of the key.
func (c *LRU[K, V]) Peek(key K) (value V, ok bool) {
	if ent, ok := c.items[key]; ok {
		return ent.Value, true
	}
	return
}

// Remove removes the provided key from the cache, returning if the
// key was contained.
func (c *LRU[K, V]) Remove(key K) (present bool) {
	if ent, ok := c.items[key]; ok {
		c.removeElement(ent)
		return true
	}
	return false
}

// RemoveOldest removes the oldest item from the cache.
func (c *LRU[K, V]) RemoveOldest() (key K, value V, ok bool) {
	if ent := c.evictList.Back(); ent != nil {
		c.removeElement(ent)
		return ent.Key, ent.Value, true
	}
	return
}

// GetOldest returns the oldest entry
func (c *LRU[K, V]) GetOldest() (key K, value V, ok bool) {
	if ent := c.evictList.Back(); ent != nil {
		return ent.Key, ent.Value, true
	}
	return
}

// Keys returns a slice of the keys in the cache, from oldest to newest.
func (c *LRU[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	for ent := c.evictList.Back(); ent != nil; ent = ent.PrevEntry() {
		keys = append(keys, ent.Key)
	}
	return keys
}

// Values returns a slice of the values in the cache, from oldest to newest.
func (c *LRU[K, V]) Values() []V {
	values := make([]V, 0, len(c.items))
	for ent := c.evictList.Back(); ent != nil; ent = ent.PrevEntry() {
		values = append(values, ent.Value)
	}
	return values
}

// Len returns the number of items in the cache.
func (c *LRU[K, V]) Len() int {
	return len(c.items)
}

// Cap returns the capacity of the cache
func (c *LRU[K, V]) Cap() int {
	return c.size
}

// evictOldest runs the eviction protocol: it drops the tail of the recency
// list from both the list and the index. The cache must not be empty.
func (c *LRU[K, V]) evictOldest() (key K, value V, err error) {
	ent := c.evictList.Back()
	if ent == nil {
		return key, value, fmt.Errorf("%w: cannot evict from an empty cache", ErrIllegalState)
	}
	c.removeElement(ent)
	if len(c.items) != c.evictList.Len() {
		return ent.Key, ent.Value, fmt.Errorf("%w: index holds %d keys, list holds %d entries",
			ErrIllegalState, len(c.items), c.evictList.Len())
	}
	return ent.Key, ent.Value, nil
}

// removeElement is used to remove a given list element from the cache
func (c *LRU[K, V]) removeElement(e *Entry[K, V]) {
	c.evictList.Remove(e)
	delete(c.items, e.Key)
}
