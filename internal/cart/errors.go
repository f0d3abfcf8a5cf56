package cart

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned by operations that require a signed-in user.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrPersistenceCorrupt is returned when the persisted cart blob cannot be
// parsed. Callers recover by discarding the blob and keeping their in-memory
// default.
var ErrPersistenceCorrupt = errors.New("persisted cart data is corrupt")

// StockExceededError is returned when adding an item would push its quantity
// past the available stock. Available carries the count the remote store
// reported at the time of the call.
type StockExceededError struct {
	ItemID    string
	Title     string
	Available int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("stock exceeded for %q: %d available", e.Title, e.Available)
}

// StockUnverifiableError is returned when the remote stock lookup for an item
// failed, so no stock guarantee can be given.
type StockUnverifiableError struct {
	ItemID string
	Title  string
	Err    error
}

func (e *StockUnverifiableError) Error() string {
	return fmt.Sprintf("cannot verify stock for %q: %v", e.Title, e.Err)
}

func (e *StockUnverifiableError) Unwrap() error {
	return e.Err
}

// RemoteError wraps a failed call against an external collaborator.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
