package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mangastore/internal/cart"
)

func newTestManager() (*cart.Manager, map[string]*cart.MemoryStorage) {
	storages := make(map[string]*cart.MemoryStorage)
	manager := cart.NewManager(&fakeStock{counts: map[string]int{"manga-1": 5}}, func(key string) cart.Storage {
		storage := cart.NewMemoryStorage(key)
		storages[key] = storage
		return storage
	}, discardLogger())
	return manager, storages
}

func TestManager_StoreFor(t *testing.T) {
	ctx := context.Background()

	t.Run("same user gets the same store", func(t *testing.T) {
		manager, _ := newTestManager()
		assert.Same(t, manager.StoreFor("user-1"), manager.StoreFor("user-1"))
	})

	t.Run("users are isolated", func(t *testing.T) {
		manager, storages := newTestManager()

		require.NoError(t, manager.StoreFor("user-1").AddItem(ctx, onePiece))

		assert.True(t, manager.StoreFor("user-2").State().IsEmpty())
		assert.Contains(t, storages, cart.DefaultStorageKey+"-user-1")
		assert.Contains(t, storages, cart.DefaultStorageKey+"-user-2")
	})

	t.Run("first access hydrates from storage", func(t *testing.T) {
		manager, storages := newTestManager()

		require.NoError(t, manager.StoreFor("user-1").AddItem(ctx, onePiece))
		manager.Drop("user-1")

		// a fresh Manager would create new storage, so reuse the blob directly
		rehydrated := cart.NewStore(&fakeStock{}, storages[cart.DefaultStorageKey+"-user-1"], discardLogger())
		rehydrated.LoadFromStorage()
		assert.Len(t, rehydrated.State().Items, 1)
	})
}

func TestManager_Drop(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager()

	require.NoError(t, manager.StoreFor("user-1").AddItem(ctx, onePiece))
	dropped := manager.StoreFor("user-1")
	manager.Drop("user-1")

	assert.NotSame(t, dropped, manager.StoreFor("user-1"))
}
