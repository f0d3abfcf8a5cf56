package stock

import (
	"context"
)

// Repository defines the contract for remote stock reads and writes.
type Repository interface {
	// ListStocks returns the stock counts for the given ids. Ids without a
	// row are simply absent from the result.
	ListStocks(ctx context.Context, ids []string) (map[string]int, error)
	// GetStock returns the stock row for one item, or ErrNotFound.
	GetStock(ctx context.Context, id string) (Info, error)
	// UpdateStock writes an absolute stock count back to the remote store.
	UpdateStock(ctx context.Context, id string, count int) error
}
