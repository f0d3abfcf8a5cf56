package cart

import (
	"context"
)

// StockFetcher answers "how many units are available right now" by asking the
// remote store. Satisfied by *stock.Oracle.
type StockFetcher interface {
	FetchStock(ctx context.Context, id string) (int, error)
}

// Storage persists the cart blob under a fixed key.
type Storage interface {
	Save(state State) error
	// Load returns the persisted state and whether a blob existed. A blob
	// that exists but cannot be parsed yields ErrPersistenceCorrupt.
	Load() (State, bool, error)
	Delete() error
}

// AuthProvider is the external authentication collaborator. CurrentUserID
// returns an empty id when no session is present.
type AuthProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
	SignOut(ctx context.Context) error
}
