package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressCacheRoundTrip(t *testing.T) {
	cache, err := NewProgressCache(8)
	require.NoError(t, err)

	_, ok := cache.Get(1)
	assert.False(t, ok)

	cache.Set(1, 40)
	got, ok := cache.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 40, got)

	cache.Invalidate(1)
	_, ok = cache.Get(1)
	assert.False(t, ok)
}

func TestProgressCacheEvictsOldest(t *testing.T) {
	cache, err := NewProgressCache(2)
	require.NoError(t, err)

	cache.Set(1, 10)
	cache.Set(2, 20)
	cache.Set(3, 30)

	_, ok := cache.Get(1)
	assert.False(t, ok)

	got, ok := cache.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 30, got)
}

func TestProgressCacheDefaultSize(t *testing.T) {
	cache, err := NewProgressCache(0)
	require.NoError(t, err)

	cache.Set(7, 100)
	got, ok := cache.Get(7)
	assert.True(t, ok)
	assert.Equal(t, 100, got)
}
