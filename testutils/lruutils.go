// Package testutils holds behavioural checks shared by the cache test suites.
package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Cache is the read side common to every cache under test.
type Cache interface {
	Get(key int) (int, bool)
	Peek(key int) (int, bool)
	Contains(key int) bool
	Remove(key int) bool
	Keys() []int
	Len() int
	Cap() int
}

// AddFunc stores key/value in the cache under test.
type AddFunc func(key, value int) error

// CheckConsistent verifies that Keys and Len agree, that keys are unique and
// that every listed key is resident.
func CheckConsistent(t *testing.T, l Cache) {
	t.Helper()
	keys := l.Keys()
	require.Len(t, keys, l.Len(), "keys and len disagree")
	require.LessOrEqual(t, l.Len(), l.Cap(), "len exceeds capacity")
	seen := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		_, dup := seen[k]
		require.False(t, dup, "duplicate key %v", k)
		seen[k] = struct{}{}
		require.True(t, l.Contains(k), "listed key %v is not resident", k)
	}
}

// BasicTest fills l with twice its capacity and checks eviction order,
// removal, promotion and purge.
func BasicTest(t *testing.T, l Cache, add AddFunc, purge func()) {
	t.Helper()
	capacity := l.Cap()

	// add twice as much the capacity to check if eviction occurs
	for i := 0; i < 2*capacity; i++ {
		require.NoError(t, add(i, i))
		require.LessOrEqual(t, l.Len(), capacity)
	}
	require.Equal(t, capacity, l.Len())
	CheckConsistent(t, l)

	// cache should contain only the keys from capacity..2*capacity, anything before
	// that should have been evicted
	for i, k := range l.Keys() {
		v, ok := l.Get(k)
		require.True(t, ok, "bad key: %v", k)
		require.Equal(t, k, v)
		require.Equal(t, i+capacity, v)
	}
	for i := 0; i < capacity; i++ {
		_, ok := l.Get(i)
		require.False(t, ok, "%v should be evicted", i)
	}
	for i := capacity; i < 2*capacity; i++ {
		_, ok := l.Get(i)
		require.True(t, ok, "%v should not be evicted", i)
	}

	// delete half the items from cache
	lastIndex := capacity + capacity/2
	for i := capacity; i < lastIndex; i++ {
		require.True(t, l.Remove(i), "%v should be contained", i)
		require.False(t, l.Remove(i), "%v should not be contained", i)
		_, ok := l.Get(i)
		require.False(t, ok, "%v should be deleted", i)
	}

	// this makes this item the most recently accessed; moved to the front
	l.Get(lastIndex)

	cacheLen := l.Len()
	require.Equal(t, capacity-capacity/2, cacheLen)
	CheckConsistent(t, l)

	// Keys - returns items from oldest to newest.
	for i, k := range l.Keys() {
		if i == cacheLen-1 {
			require.Equal(t, lastIndex, k, "out of order key at %v", i)
		} else {
			require.Equal(t, i+lastIndex+1, k, "out of order key at %v", i)
		}
	}

	purge()
	require.Equal(t, 0, l.Len())
	_, ok := l.Get(capacity)
	require.False(t, ok, "should contain nothing")

	// purging an empty cache is a no-op
	purge()
	require.Equal(t, 0, l.Len())
	require.Equal(t, capacity, l.Cap())
}

// PromotionTest checks that a Get saves the oldest key from the next
// eviction. l must hold at least two entries.
func PromotionTest(t *testing.T, l Cache, add AddFunc) {
	t.Helper()
	capacity := l.Cap()
	require.GreaterOrEqual(t, capacity, 2)
	for i := 1; i <= capacity; i++ {
		require.NoError(t, add(i, i))
	}

	v, ok := l.Get(1)
	require.True(t, ok)
	require.Equal(t, 1, v)

	require.NoError(t, add(capacity+1, capacity+1))
	require.True(t, l.Contains(1), "promoted key should survive")
	require.False(t, l.Contains(2), "least recently used key should be evicted")
	require.Equal(t, capacity, l.Len())
}

// UpdateTest checks that re-adding a resident key replaces its value,
// promotes it, and neither grows nor evicts.
func UpdateTest(t *testing.T, l Cache, add AddFunc) {
	t.Helper()
	capacity := l.Cap()
	for i := 0; i < capacity; i++ {
		require.NoError(t, add(i, i))
	}

	require.NoError(t, add(0, 100))
	require.Equal(t, capacity, l.Len())
	v, ok := l.Peek(0)
	require.True(t, ok)
	require.Equal(t, 100, v)
	keys := l.Keys()
	require.Equal(t, 0, keys[len(keys)-1], "updated key should be the newest")
	for i := 1; i < capacity; i++ {
		require.True(t, l.Contains(i), "update must not evict %v", i)
	}
}

// ContainsTest checks that Contains does not update the recent-ness.
func ContainsTest(t *testing.T, l Cache, add AddFunc) {
	t.Helper()
	capacity := l.Cap()
	for i := 0; i < capacity; i++ {
		require.NoError(t, add(i, i))
	}

	// contains should not update the recent-ness so this item will remain the oldest
	require.True(t, l.Contains(0))

	// oldest (0) should have been evicted
	require.NoError(t, add(capacity, capacity))
	require.False(t, l.Contains(0), "Contains should not have updated recent-ness of 0")
}

// PeekTest checks that Peek does not update the recent-ness.
func PeekTest(t *testing.T, l Cache, add AddFunc) {
	t.Helper()
	capacity := l.Cap()
	for i := 0; i < capacity; i++ {
		require.NoError(t, add(i, i))
	}

	v, ok := l.Peek(0)
	require.True(t, ok)
	require.Equal(t, 0, v)

	require.NoError(t, add(capacity, capacity))
	require.False(t, l.Contains(0), "should have been removed to make room for the new item")
}
