package checkout

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"mangastore/internal/cart"
	"mangastore/internal/order"
	"mangastore/internal/payment"
)

// Service runs the checkout sequence: validate stock, create the payment
// intent, persist the order, then decrement stock. A stock decrement failure
// after the order exists triggers a best-effort restore of the whole cart.
type Service struct {
	reconciler StockReconciler
	payments   IntentCreator
	orders     OrderPlacer
	log        logrus.FieldLogger
}

func NewService(reconciler StockReconciler, payments IntentCreator, orders OrderPlacer, log logrus.FieldLogger) *Service {
	return &Service{reconciler: reconciler, payments: payments, orders: orders, log: log}
}

func (s *Service) Checkout(ctx context.Context, userID string, req Request) (Result, error) {
	if len(req.Items) == 0 {
		return Result{}, ErrEmptyCart
	}

	if result := s.reconciler.ValidateCart(ctx, req.Items); !result.IsValid {
		return Result{}, &ValidationError{Result: result}
	}

	state := cart.State{Items: req.Items}
	total := state.TotalPrice()

	intent, err := s.payments.CreateIntent(ctx, payment.IntentRequest{
		Amount: total,
		Metadata: map[string]string{
			"user_id": userID,
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("create payment intent: %w", err)
	}

	o := &order.Order{
		UserID:          userID,
		Status:          order.StatusPending,
		Total:           total,
		PaymentIntentID: intent.PaymentIntentID,
		ShippingAddress: &req.ShippingAddress,
		Items:           orderItems(req.Items),
	}
	if err := s.orders.Place(ctx, o); err != nil {
		return Result{}, fmt.Errorf("place order: %w", err)
	}

	if err := s.reconciler.CommitStock(ctx, req.Items); err != nil {
		s.log.WithError(err).WithField("order_id", o.ID).
			Error("stock decrement failed after order placement, restoring")
		s.reconciler.RestoreStock(ctx, req.Items)
		return Result{}, fmt.Errorf("commit stock: %w", err)
	}

	return Result{
		OrderID:         o.ID,
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.PaymentIntentID,
	}, nil
}

func orderItems(items []cart.Item) []order.Item {
	out := make([]order.Item, 0, len(items))
	for _, it := range items {
		out = append(out, order.Item{
			Quantity: it.Quantity,
			Price:    it.Price,
			Manga: order.ItemManga{
				ID:       it.ID,
				Title:    it.Title,
				CoverURL: it.Cover,
			},
		})
	}
	return out
}
