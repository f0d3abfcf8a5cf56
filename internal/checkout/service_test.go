package checkout_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mangastore/internal/cart"
	"mangastore/internal/checkout"
	"mangastore/internal/order"
	"mangastore/internal/payment"
)

type fakeReconciler struct {
	validation cart.ValidationResult
	commitErr  error

	committed []cart.Item
	restored  []cart.Item
}

func (f *fakeReconciler) ValidateCart(_ context.Context, _ []cart.Item) cart.ValidationResult {
	return f.validation
}

func (f *fakeReconciler) CommitStock(_ context.Context, items []cart.Item) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = items
	return nil
}

func (f *fakeReconciler) RestoreStock(_ context.Context, items []cart.Item) {
	f.restored = items
}

type fakePayments struct {
	err error
	req payment.IntentRequest
}

func (f *fakePayments) CreateIntent(_ context.Context, req payment.IntentRequest) (payment.Intent, error) {
	f.req = req
	if f.err != nil {
		return payment.Intent{}, f.err
	}
	return payment.Intent{ClientSecret: "pi_secret", PaymentIntentID: "pi_123"}, nil
}

type fakeOrders struct {
	err    error
	placed *order.Order
}

func (f *fakeOrders) Place(_ context.Context, o *order.Order) error {
	if f.err != nil {
		return f.err
	}
	o.ID = "order-1"
	f.placed = o
	return nil
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func validRequest() checkout.Request {
	return checkout.Request{
		Items: []cart.Item{
			{ID: "manga-1", Title: "One Piece Tome 1", Cover: "/covers/one-piece-1.jpg", Price: 6.99, Quantity: 2},
			{ID: "manga-2", Title: "Berserk Tome 1", Price: 12.50, Quantity: 1},
		},
		ShippingAddress: order.ShippingAddress{
			FirstName:  "Jean",
			LastName:   "Dupont",
			Email:      "jean@example.com",
			Address:    "1 rue de la Paix",
			PostalCode: "75001",
			City:       "Paris",
			Country:    "France",
		},
	}
}

func newService(r *fakeReconciler, p *fakePayments, o *fakeOrders) *checkout.Service {
	if r.validation.Errors == nil {
		r.validation.IsValid = true
	}
	return checkout.NewService(r, p, o, discardLogger())
}

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path places the order and decrements stock", func(t *testing.T) {
		reconciler := &fakeReconciler{}
		payments := &fakePayments{}
		orders := &fakeOrders{}
		svc := newService(reconciler, payments, orders)

		result, err := svc.Checkout(ctx, "user-1", validRequest())

		require.NoError(t, err)
		assert.Equal(t, "order-1", result.OrderID)
		assert.Equal(t, "pi_secret", result.ClientSecret)
		assert.Equal(t, "pi_123", result.PaymentIntentID)

		assert.InDelta(t, 26.48, payments.req.Amount, 0.0001)
		assert.Equal(t, "user-1", payments.req.Metadata["user_id"])

		require.NotNil(t, orders.placed)
		assert.Equal(t, "user-1", orders.placed.UserID)
		assert.Equal(t, order.StatusPending, orders.placed.Status)
		assert.Equal(t, "pi_123", orders.placed.PaymentIntentID)
		require.Len(t, orders.placed.Items, 2)
		assert.Equal(t, "manga-1", orders.placed.Items[0].Manga.ID)
		assert.Equal(t, "/covers/one-piece-1.jpg", orders.placed.Items[0].Manga.CoverURL)

		assert.Len(t, reconciler.committed, 2)
		assert.Empty(t, reconciler.restored)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		svc := newService(&fakeReconciler{}, &fakePayments{}, &fakeOrders{})

		_, err := svc.Checkout(ctx, "user-1", checkout.Request{})
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	})

	t.Run("validation failure carries the result", func(t *testing.T) {
		reconciler := &fakeReconciler{validation: cart.ValidationResult{
			IsValid: false,
			Errors:  []string{`Stock insuffisant pour "One Piece Tome 1". Demandé: 3, Disponible: 1`},
		}}
		payments := &fakePayments{}
		svc := checkout.NewService(reconciler, payments, &fakeOrders{}, discardLogger())

		_, err := svc.Checkout(ctx, "user-1", validRequest())

		var validationErr *checkout.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Result.Errors, 1)
		assert.Empty(t, payments.req.Metadata, "payment is never attempted")
	})

	t.Run("payment failure stops before the order", func(t *testing.T) {
		paymentErr := errors.New("card declined")
		orders := &fakeOrders{}
		svc := newService(&fakeReconciler{}, &fakePayments{err: paymentErr}, orders)

		_, err := svc.Checkout(ctx, "user-1", validRequest())

		assert.ErrorIs(t, err, paymentErr)
		assert.Nil(t, orders.placed)
	})

	t.Run("placement failure leaves stock untouched", func(t *testing.T) {
		placeErr := errors.New("insert refused")
		reconciler := &fakeReconciler{}
		svc := newService(reconciler, &fakePayments{}, &fakeOrders{err: placeErr})

		_, err := svc.Checkout(ctx, "user-1", validRequest())

		assert.ErrorIs(t, err, placeErr)
		assert.Empty(t, reconciler.committed)
		assert.Empty(t, reconciler.restored)
	})

	t.Run("commit failure restores the whole cart", func(t *testing.T) {
		commitErr := errors.New("write refused")
		reconciler := &fakeReconciler{commitErr: commitErr}
		svc := newService(reconciler, &fakePayments{}, &fakeOrders{})

		_, err := svc.Checkout(ctx, "user-1", validRequest())

		assert.ErrorIs(t, err, commitErr)
		assert.Len(t, reconciler.restored, 2)
	})
}
