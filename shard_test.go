package lru

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venkatsvpr/lrucache/testutils"
)

func TestSharded_Invalid(t *testing.T) {
	for _, tc := range []struct {
		name     string
		capacity int
		shards   int
		hash     Hasher[string]
	}{
		{"zero capacity", 0, 4, StringHasher[string]},
		{"negative capacity", -1, 4, StringHasher[string]},
		{"zero shards", 8, 0, StringHasher[string]},
		{"nil hasher", 8, 4, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewSharded[string, int](tc.capacity, tc.shards, tc.hash)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestSharded_CapacitySplit(t *testing.T) {
	c, err := NewSharded[string, int](10, 4, StringHasher[string])
	require.NoError(t, err)

	assert.Equal(t, 4, c.Shards())
	assert.Equal(t, 10, c.Cap())
	assert.Equal(t, 4, c.shards[0].Cap(), "first shard takes the remainder")
	for _, s := range c.shards[1:] {
		assert.Equal(t, 2, s.Cap())
	}

	// more shards than slots
	c, err = NewSharded[string, int](3, 16, StringHasher[string])
	require.NoError(t, err)
	assert.Equal(t, 3, c.Shards())
	assert.Equal(t, 3, c.Cap())
}

// A single shard behaves exactly like Cache.
func TestSharded_SingleShard(t *testing.T) {
	c, err := NewSharded[int, int](128, 1, IntHasher[int])
	require.NoError(t, err)
	add := func(k, v int) error {
		_, err := c.Put(k, v)
		return err
	}
	testutils.BasicTest(t, c, add, c.Clear)
}

func TestSharded_Operations(t *testing.T) {
	c, err := NewSharded[string, int](512, 8, StringHasher[string])
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	for i := 0; i < 32; i++ {
		res, err := c.Put("k"+strconv.Itoa(i), i)
		require.NoError(t, err)
		assert.Equal(t, Inserted, res)
	}
	res, err := c.Put("k0", 100)
	require.NoError(t, err)
	assert.Equal(t, Updated, res)

	v, ok := c.Get("k0")
	require.True(t, ok)
	assert.Equal(t, 100, v)

	v, ok = c.Peek("k1")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, c.Contains("k2"))
	assert.False(t, c.Contains("missing"))

	assert.True(t, c.Remove("k3"))
	assert.False(t, c.Remove("k3"))

	assert.LessOrEqual(t, c.Len(), c.Cap())
	assert.Len(t, c.Keys(), c.Len())

	st := c.Stats()
	assert.Equal(t, uint64(1), st.Updates)
	assert.Equal(t, uint64(1), st.Removals)
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, st.Inserts-st.Evictions-st.Removals, uint64(c.Len()))

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 512, c.Cap())
}

func TestSharded_InvalidPut(t *testing.T) {
	c, err := NewSharded[string, []byte](8, 2, StringHasher[string])
	require.NoError(t, err)
	_, err = c.Put("a", nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.True(t, c.IsEmpty())
}

func TestSharded_CapacityBound(t *testing.T) {
	c, err := NewSharded[int, int](50, 7, IntHasher[int])
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		_, err := c.Put(i, i)
		require.NoError(t, err)
		require.LessOrEqual(t, c.Len(), c.Cap())
	}
	for _, s := range c.shards {
		require.Equal(t, s.Cap(), s.Len(), "every shard should be full")
		testutils.CheckConsistent(t, s)
	}
}

func TestSharded_Concurrent(t *testing.T) {
	const workers = 200
	c, err := NewSharded[string, int](10000, 8, StringHasher[string])
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = c.Put(strconv.Itoa(i), i)
		}(i)
	}
	wg.Wait()

	// Shards hold far more than a fair share, so nothing was evicted.
	assert.Equal(t, workers, c.Len())
	for i := 0; i < workers; i++ {
		v, ok := c.Get(strconv.Itoa(i))
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestHashers(t *testing.T) {
	assert.Equal(t, StringHasher("abc"), StringHasher("abc"))
	assert.NotEqual(t, StringHasher("abc"), StringHasher("abd"))

	type userID string
	assert.Equal(t, StringHasher(userID("abc")), StringHasher("abc"))

	assert.Equal(t, IntHasher(42), IntHasher(int64(42)))
	assert.NotEqual(t, IntHasher(1), IntHasher(2))
}
