package cart

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Coordinator binds cart initialization to startup and cart teardown to
// authentication-state transitions.
type Coordinator struct {
	store *Store
	auth  AuthProvider
	log   logrus.FieldLogger
}

func NewCoordinator(store *Store, auth AuthProvider, log logrus.FieldLogger) *Coordinator {
	return &Coordinator{store: store, auth: auth, log: log}
}

// Startup hydrates the cart from storage, then purges it when no
// authenticated identity is present alongside a non-empty cart. That state is
// an artifact of a session expiring after the cart was persisted.
func (c *Coordinator) Startup(ctx context.Context) {
	c.store.LoadFromStorage()

	userID, err := c.auth.CurrentUserID(ctx)
	if err != nil {
		c.log.WithError(err).Warn("resolving current user failed")
		return
	}
	if userID == "" && !c.store.State().IsEmpty() {
		c.log.Info("anonymous session with persisted cart, clearing")
		c.store.ClearCartAndStorage()
	}
}

// SignOut clears the cart and its persisted blob, then asks the auth provider
// to end the session. Clearing runs first so the cart is gone even when the
// provider call fails or stalls.
func (c *Coordinator) SignOut(ctx context.Context) error {
	c.store.ClearCartAndStorage()

	if err := c.auth.SignOut(ctx); err != nil {
		return &RemoteError{Op: "sign out", Err: err}
	}
	return nil
}
