package order

import (
	"context"
)

// Repository defines the contract for order storage.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, orderID string) (Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) (Order, error)
	Create(ctx context.Context, o *Order) error
}
