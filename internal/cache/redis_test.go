package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisStore_Unreachable(t *testing.T) {
	store, err := NewRedisStore(RedisConfig{Host: "127.0.0.1", Port: 1})
	require.Error(t, err)
	assert.Nil(t, store)
}

func TestRedisStore_ClosedClientSurfacesErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	require.NoError(t, client.Close())
	store := NewRedisStoreWithClient(client)
	ctx := context.Background()

	_, err := store.Get(ctx, "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)

	assert.Error(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	_, err = store.Version(ctx, TopicAssets)
	assert.Error(t, err)
	assert.Error(t, store.Bump(ctx, TopicAssets))
	assert.NoError(t, store.Bump(ctx))

	// Borrowed clients are left to their owner.
	assert.NoError(t, store.Close())
}

// Runs against a real server when ARMORY_TEST_REDIS_ADDR is set.
func TestRedisStore_Live(t *testing.T) {
	addr := os.Getenv("ARMORY_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("ARMORY_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()
	require.NoError(t, client.FlushDB(ctx).Err())

	store := NewRedisStoreWithClient(client)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	v, err := store.Version(ctx, TopicDashboard)
	require.NoError(t, err)
	assert.Zero(t, v)

	require.NoError(t, store.Bump(ctx, TopicDashboard, TopicAssets))
	require.NoError(t, store.Bump(ctx, TopicDashboard))
	v, err = store.Version(ctx, TopicDashboard)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}
