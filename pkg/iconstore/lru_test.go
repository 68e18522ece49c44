package iconstore_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/illmade-knight/go-svgicon/pkg/iconstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps an InMemoryStore and counts Fetch calls that reach it.
type countingStore struct {
	*iconstore.InMemoryStore
	fetches atomic.Int32
}

func (c *countingStore) Fetch(ctx context.Context, url string) ([]byte, error) {
	c.fetches.Add(1)
	return c.InMemoryStore.Fetch(ctx, url)
}

func TestLRUStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Front shields the inner store on repeat fetches", func(t *testing.T) {
		inner := &countingStore{InMemoryStore: iconstore.NewInMemoryStore()}
		lru, err := iconstore.NewLRUStore(2, inner)
		require.NoError(t, err)

		require.NoError(t, lru.Write(ctx, "url-1", []byte("one")))

		for i := 0; i < 3; i++ {
			got, err := lru.Fetch(ctx, "url-1")
			require.NoError(t, err)
			assert.Equal(t, []byte("one"), got)
		}
		assert.Equal(t, int32(0), inner.fetches.Load(), "written entry should be served from the front")
	})

	t.Run("Eviction falls through to the inner store", func(t *testing.T) {
		inner := &countingStore{InMemoryStore: iconstore.NewInMemoryStore()}
		lru, err := iconstore.NewLRUStore(2, inner)
		require.NoError(t, err)

		require.NoError(t, lru.Write(ctx, "url-1", []byte("one")))
		require.NoError(t, lru.Write(ctx, "url-2", []byte("two")))
		require.NoError(t, lru.Write(ctx, "url-3", []byte("three"))) // evicts url-1

		got, err := lru.Fetch(ctx, "url-1")
		require.NoError(t, err)
		assert.Equal(t, []byte("one"), got)
		assert.Equal(t, int32(1), inner.fetches.Load(), "evicted entry should be refetched from the inner store")
	})

	t.Run("Miss in both layers returns ErrNotFound", func(t *testing.T) {
		inner := &countingStore{InMemoryStore: iconstore.NewInMemoryStore()}
		lru, err := iconstore.NewLRUStore(2, inner)
		require.NoError(t, err)

		_, err = lru.Fetch(ctx, "absent")
		assert.ErrorIs(t, err, iconstore.ErrNotFound)
	})

	t.Run("Constructor validates arguments", func(t *testing.T) {
		_, err := iconstore.NewLRUStore(0, iconstore.NewInMemoryStore())
		require.Error(t, err)

		_, err = iconstore.NewLRUStore(1, nil)
		require.Error(t, err)
	})
}
