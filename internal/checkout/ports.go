package checkout

import (
	"context"

	"mangastore/internal/cart"
	"mangastore/internal/order"
	"mangastore/internal/payment"
)

// StockReconciler is the slice of the cart reconciler checkout needs.
// Satisfied by *cart.Reconciler.
type StockReconciler interface {
	ValidateCart(ctx context.Context, items []cart.Item) cart.ValidationResult
	CommitStock(ctx context.Context, items []cart.Item) error
	RestoreStock(ctx context.Context, items []cart.Item)
}

// IntentCreator creates the payment intent backing an order. Satisfied by
// *payment.Service.
type IntentCreator interface {
	CreateIntent(ctx context.Context, req payment.IntentRequest) (payment.Intent, error)
}

// OrderPlacer persists a new order. Satisfied by *order.Service.
type OrderPlacer interface {
	Place(ctx context.Context, o *order.Order) error
}
