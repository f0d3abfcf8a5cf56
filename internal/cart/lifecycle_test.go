package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mangastore/internal/cart"
)

type fakeAuth struct {
	userID    string
	userErr   error
	signOut   error
	signedOut bool
}

func (f *fakeAuth) CurrentUserID(context.Context) (string, error) {
	return f.userID, f.userErr
}

func (f *fakeAuth) SignOut(context.Context) error {
	f.signedOut = true
	return f.signOut
}

func seedPersistedCart(t *testing.T, storage *cart.MemoryStorage) {
	t.Helper()
	err := storage.Save(cart.State{Items: []cart.Item{{ID: "manga-1", Title: "One Piece Tome 1", Quantity: 1}}})
	require.NoError(t, err)
}

func TestCoordinator_Startup(t *testing.T) {
	ctx := context.Background()

	t.Run("authenticated user keeps the persisted cart", func(t *testing.T) {
		storage := cart.NewMemoryStorage("")
		seedPersistedCart(t, storage)
		store := cart.NewStore(&fakeStock{}, storage, discardLogger())

		c := cart.NewCoordinator(store, &fakeAuth{userID: "user-1"}, discardLogger())
		c.Startup(ctx)

		assert.Len(t, store.State().Items, 1)
	})

	t.Run("anonymous session with persisted cart is purged", func(t *testing.T) {
		storage := cart.NewMemoryStorage("")
		seedPersistedCart(t, storage)
		store := cart.NewStore(&fakeStock{}, storage, discardLogger())

		c := cart.NewCoordinator(store, &fakeAuth{userID: ""}, discardLogger())
		c.Startup(ctx)

		assert.True(t, store.State().IsEmpty())
		_, found, _ := storage.Load()
		assert.False(t, found, "blob is deleted with the cart")
	})

	t.Run("anonymous session with empty cart does nothing", func(t *testing.T) {
		storage := cart.NewMemoryStorage("")
		store := cart.NewStore(&fakeStock{}, storage, discardLogger())

		c := cart.NewCoordinator(store, &fakeAuth{userID: ""}, discardLogger())
		c.Startup(ctx)

		assert.True(t, store.State().IsEmpty())
	})

	t.Run("identity resolution failure keeps the cart", func(t *testing.T) {
		storage := cart.NewMemoryStorage("")
		seedPersistedCart(t, storage)
		store := cart.NewStore(&fakeStock{}, storage, discardLogger())

		c := cart.NewCoordinator(store, &fakeAuth{userErr: errors.New("session lookup failed")}, discardLogger())
		c.Startup(ctx)

		assert.Len(t, store.State().Items, 1)
	})
}

func TestCoordinator_SignOut(t *testing.T) {
	ctx := context.Background()

	t.Run("clears cart and blob then ends the session", func(t *testing.T) {
		storage := cart.NewMemoryStorage("")
		seedPersistedCart(t, storage)
		store := cart.NewStore(&fakeStock{}, storage, discardLogger())
		store.LoadFromStorage()
		auth := &fakeAuth{userID: "user-1"}

		c := cart.NewCoordinator(store, auth, discardLogger())
		require.NoError(t, c.SignOut(ctx))

		assert.True(t, auth.signedOut)
		assert.True(t, store.State().IsEmpty())
		_, found, _ := storage.Load()
		assert.False(t, found)
	})

	t.Run("cart is gone even when the provider fails", func(t *testing.T) {
		storage := cart.NewMemoryStorage("")
		seedPersistedCart(t, storage)
		store := cart.NewStore(&fakeStock{}, storage, discardLogger())
		store.LoadFromStorage()
		providerErr := errors.New("logout endpoint unreachable")
		auth := &fakeAuth{userID: "user-1", signOut: providerErr}

		c := cart.NewCoordinator(store, auth, discardLogger())
		err := c.SignOut(ctx)

		var remote *cart.RemoteError
		require.ErrorAs(t, err, &remote)
		assert.ErrorIs(t, err, providerErr)

		assert.True(t, store.State().IsEmpty())
		_, found, _ := storage.Load()
		assert.False(t, found, "blob deleted before the provider call")
	})
}
