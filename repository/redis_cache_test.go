package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_SetGetWithTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := NewRedisCache(mr.Addr())
	t.Cleanup(func() { _ = cache.Close() })

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "selic:current", `{"rate":0.105}`, time.Hour))

	val, ok := cache.Get(ctx, "selic:current")
	require.True(t, ok)
	assert.Equal(t, `{"rate":0.105}`, val)
	assert.Equal(t, time.Hour, mr.TTL("selic:current"))

	mr.FastForward(time.Hour + time.Second)
	_, ok = cache.Get(ctx, "selic:current")
	assert.False(t, ok)
}

func TestRedisCache_MissingKey(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := NewRedisCache(mr.Addr())
	t.Cleanup(func() { _ = cache.Close() })

	_, ok := cache.Get(context.Background(), "missing")
	assert.False(t, ok)
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cache := NewRedisCache(addr)
	t.Cleanup(func() { _ = cache.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)
	assert.Error(t, cache.Set(ctx, "k", "v", time.Minute))
}
