package checkout

import (
	"errors"

	"mangastore/internal/cart"
	"mangastore/internal/order"
)

// ErrEmptyCart is returned when a checkout is attempted with no items.
var ErrEmptyCart = errors.New("empty cart")

// ValidationError carries the per-item stock problems that blocked a
// checkout.
type ValidationError struct {
	Result cart.ValidationResult
}

func (e *ValidationError) Error() string {
	return "cart failed stock validation"
}

// Request is the checkout payload: the cart contents plus shipping details.
type Request struct {
	Items           []cart.Item           `json:"items" validate:"required,min=1,dive"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress" validate:"required"`
}

// Result is returned on a successful checkout.
type Result struct {
	OrderID         string `json:"orderId"`
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}
