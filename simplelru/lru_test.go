package simplelru

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venkatsvpr/lrucache/testutils"
)

var _ LRUCache[int, int] = (*LRU[int, int])(nil)

func newTestLRU(t *testing.T, size int) (*LRU[int, int], testutils.AddFunc) {
	t.Helper()
	l, err := NewLRU[int, int](size)
	require.NoError(t, err)
	add := func(k, v int) error {
		_, err := l.Add(k, v)
		return err
	}
	return l, add
}

func TestLRU(t *testing.T) {
	l, add := newTestLRU(t, 128)
	testutils.BasicTest(t, l, add, l.Purge)
}

func TestLRU_Promotion(t *testing.T) {
	l, add := newTestLRU(t, 8)
	testutils.PromotionTest(t, l, add)
}

func TestLRU_Update(t *testing.T) {
	l, add := newTestLRU(t, 8)
	testutils.UpdateTest(t, l, add)
}

func TestLRU_Contains(t *testing.T) {
	l, add := newTestLRU(t, 2)
	testutils.ContainsTest(t, l, add)
}

func TestLRU_Peek(t *testing.T) {
	l, add := newTestLRU(t, 2)
	testutils.PeekTest(t, l, add)
}

func TestLRU_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		l, err := NewLRU[int, int](size)
		assert.Nil(t, l)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

// Test that Add returns true/false if an eviction occurred
func TestLRU_Add(t *testing.T) {
	l, err := NewLRU[int, int](1)
	require.NoError(t, err)

	evicted, err := l.Add(1, 1)
	require.NoError(t, err)
	assert.False(t, evicted, "should not have an eviction")

	evicted, err = l.Add(1, 10)
	require.NoError(t, err)
	assert.False(t, evicted, "an update should never evict")

	evicted, err = l.Add(2, 2)
	require.NoError(t, err)
	assert.True(t, evicted, "should have an eviction")
	assert.Equal(t, []int{2}, l.Keys())
}

func TestLRU_EvictsExactlyOncePerMissAtCapacity(t *testing.T) {
	l, err := NewLRU[int, int](4)
	require.NoError(t, err)

	evictions := 0
	for i := 0; i < 100; i++ {
		wasFull := l.Len() == l.Cap()
		resident := l.Contains(i % 10)
		evicted, err := l.Add(i%10, i)
		require.NoError(t, err)
		assert.Equal(t, wasFull && !resident, evicted, "add #%d", i)
		if evicted {
			evictions++
		}
		assert.LessOrEqual(t, l.Len(), l.Cap())
		assert.Equal(t, l.Len(), l.evictList.Len())
	}
	assert.Positive(t, evictions)
}

func TestLRU_GetOldest_RemoveOldest(t *testing.T) {
	l, err := NewLRU[int, int](128)
	require.NoError(t, err)

	_, _, ok := l.GetOldest()
	assert.False(t, ok)
	_, _, ok = l.RemoveOldest()
	assert.False(t, ok)

	for i := 0; i < 256; i++ {
		_, err := l.Add(i, i)
		require.NoError(t, err)
	}

	k, _, ok := l.GetOldest()
	require.True(t, ok)
	assert.Equal(t, 128, k)

	k, _, ok = l.RemoveOldest()
	require.True(t, ok)
	assert.Equal(t, 128, k)

	k, v, ok := l.RemoveOldest()
	require.True(t, ok)
	assert.Equal(t, 129, k)
	assert.Equal(t, 129, v)
	assert.Equal(t, 126, l.Len())
}

func TestLRU_Values(t *testing.T) {
	l, err := NewLRU[string, int](3)
	require.NoError(t, err)

	for i, k := range []string{"a", "b", "c"} {
		_, err := l.Add(k, i)
		require.NoError(t, err)
	}
	l.Get("a")

	assert.Equal(t, []string{"b", "c", "a"}, l.Keys())
	assert.Equal(t, []int{1, 2, 0}, l.Values())
}

func TestLRU_EvictEmpty(t *testing.T) {
	l, err := NewLRU[int, int](1)
	require.NoError(t, err)

	_, _, err = l.evictOldest()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalState))
	assert.Equal(t, 0, l.Len())
}

func TestLRU_RemoveMissing(t *testing.T) {
	l, err := NewLRU[int, int](2)
	require.NoError(t, err)

	assert.False(t, l.Remove(1), "remove on empty cache")
	_, err = l.Add(1, 1)
	require.NoError(t, err)
	assert.False(t, l.Remove(2))
	assert.True(t, l.Remove(1))
	assert.Equal(t, 0, l.Len())
}
