package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/optres/storage"
)

func newRedis(t *testing.T, ttl time.Duration) (*storage.Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	r, err := storage.DialRedis(context.Background(), storage.RedisConfig{
		Addr:      mr.Addr(),
		KeyPrefix: "optres:",
		TTL:       ttl,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedisRoundTrip(t *testing.T) {
	ctx := context.Background()
	r, mr := newRedis(t, 0)

	_, ok, err := r.GetItem(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.SetItem(ctx, "user", `{"name":"ada"}`))
	stored, err := mr.Get("optres:user")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"ada"}`, stored)

	value, ok, err := r.GetItem(ctx, "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"name":"ada"}`, value)

	require.NoError(t, r.RemoveItem(ctx, "user"))
	assert.False(t, mr.Exists("optres:user"))
}

func TestRedisTTL(t *testing.T) {
	ctx := context.Background()
	r, mr := newRedis(t, time.Minute)
	require.NoError(t, r.SetItem(ctx, "session", "s1"))
	mr.FastForward(2 * time.Minute)
	_, ok, err := r.GetItem(ctx, "session")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisBackendFailure(t *testing.T) {
	r, mr := newRedis(t, 0)
	mr.SetError("LOADING")
	_, _, err := r.GetItem(context.Background(), "k")
	assert.ErrorContains(t, err, "LOADING")
}

func TestDialRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	_, err := storage.DialRedis(context.Background(), storage.RedisConfig{Addr: addr, DialTimeout: 200 * time.Millisecond})
	assert.Error(t, err)
}
