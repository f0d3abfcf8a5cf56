package cart

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"mangastore/internal/stock"
)

// ValidationResult aggregates per-item stock problems found before checkout.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Reconciler re-checks cart contents against live stock around an order
// attempt: Validate before placement, Commit after a successful placement,
// Restore as the compensating action when placement fails partway.
//
// Items are processed sequentially in cart order with no item-level locking.
// This assumes a single writer per session and does not defend against
// concurrent checkouts decrementing the same item from another session.
type Reconciler struct {
	stocks stock.Repository
	log    logrus.FieldLogger
}

func NewReconciler(stocks stock.Repository, log logrus.FieldLogger) *Reconciler {
	return &Reconciler{stocks: stocks, log: log}
}

// ValidateCart fetches the live stock for every line item and collects one
// human-readable error per problem. It never mutates remote state and never
// stops at the first failure.
func (r *Reconciler) ValidateCart(ctx context.Context, items []Item) ValidationResult {
	var stockErrors []string

	for _, item := range items {
		info, err := r.stocks.GetStock(ctx, item.ID)
		if err != nil {
			stockErrors = append(stockErrors,
				fmt.Sprintf("Impossible de vérifier le stock pour %q", item.Title))
			continue
		}

		if info.Stock < item.Quantity {
			stockErrors = append(stockErrors,
				fmt.Sprintf("Stock insuffisant pour %q. Demandé: %d, Disponible: %d",
					info.Title, item.Quantity, info.Stock))
		}
	}

	return ValidationResult{IsValid: len(stockErrors) == 0, Errors: stockErrors}
}

// CommitStock decrements the remote stock for every line item after a
// successful order placement. Each item is re-fetched and written back
// independently; a write failure surfaces immediately and earlier decrements
// stay in place. The caller runs RestoreStock over the whole cart to
// compensate.
func (r *Reconciler) CommitStock(ctx context.Context, items []Item) error {
	for _, item := range items {
		info, err := r.stocks.GetStock(ctx, item.ID)
		if err != nil {
			r.log.WithError(err).WithField("title", item.Title).
				Error("fetching stock before decrement failed")
			continue
		}

		newStock := info.Stock - item.Quantity
		if newStock < 0 {
			newStock = 0
		}

		if err := r.stocks.UpdateStock(ctx, item.ID, newStock); err != nil {
			return &RemoteError{Op: fmt.Sprintf("update stock for %q", item.Title), Err: err}
		}
	}
	return nil
}

// RestoreStock adds each line's quantity back onto the current remote count.
// It runs during error recovery, so it is strictly best-effort: failures are
// logged and the loop continues.
func (r *Reconciler) RestoreStock(ctx context.Context, items []Item) {
	for _, item := range items {
		info, err := r.stocks.GetStock(ctx, item.ID)
		if err != nil {
			r.log.WithError(err).WithField("title", item.Title).
				Error("fetching stock before restore failed")
			continue
		}

		if err := r.stocks.UpdateStock(ctx, item.ID, info.Stock+item.Quantity); err != nil {
			r.log.WithError(err).WithField("title", item.Title).
				Error("restoring stock failed")
		}
	}
}
