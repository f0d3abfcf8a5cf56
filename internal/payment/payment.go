package payment

import (
	"errors"
)

// ErrInvalidAmount is returned for a missing, zero or negative amount.
var ErrInvalidAmount = errors.New("invalid amount")

// DefaultCurrency is used when the request does not name one.
const DefaultCurrency = "eur"

// IntentRequest is the payment-intent payload. Amount is in major currency
// units (euros); it is converted to minor units before reaching the provider.
type IntentRequest struct {
	Amount   float64           `json:"amount"`
	Currency string            `json:"currency,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Intent is what the storefront needs to confirm a payment client-side.
type Intent struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}
