package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSet(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()

	t.Run("miss on unknown key", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrMiss)
	})

	t.Run("returns stored value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Hour))

		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("expired value is a miss", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "short", []byte("v"), 10*time.Millisecond))
		time.Sleep(20 * time.Millisecond)

		_, err := store.Get(ctx, "short")
		assert.ErrorIs(t, err, ErrMiss)
	})
}

func TestMemoryStore_Versions(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()

	v, err := store.Version(ctx, TopicAssets)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	require.NoError(t, store.Bump(ctx, TopicAssets, TopicDashboard))
	require.NoError(t, store.Bump(ctx, TopicAssets))

	v, _ = store.Version(ctx, TopicAssets)
	assert.Equal(t, int64(2), v)
	v, _ = store.Version(ctx, TopicDashboard)
	assert.Equal(t, int64(1), v)
	v, _ = store.Version(ctx, TopicBases)
	assert.Equal(t, int64(0), v)
}

func TestMemoryStore_JanitorEvicts(t *testing.T) {
	store := newMemoryStore(5 * time.Millisecond)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "gone", []byte("v"), time.Millisecond))
	require.NoError(t, store.Set(ctx, "kept", []byte("v"), time.Hour))

	assert.Eventually(t, func() bool { return store.Len() == 1 }, time.Second, 5*time.Millisecond)
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
