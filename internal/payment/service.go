package payment

import (
	"context"
	"math"
)

// IntentCreator talks to the payment provider. Satisfied by *StripeClient.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (Intent, error)
}

// Service validates and normalizes intent requests before forwarding them.
type Service struct {
	creator IntentCreator
}

func NewService(creator IntentCreator) *Service {
	return &Service{creator: creator}
}

// CreateIntent converts the amount to minor currency units and asks the
// provider for an intent. Provider errors pass through untouched so the
// handler can map them.
func (s *Service) CreateIntent(ctx context.Context, req IntentRequest) (Intent, error) {
	if req.Amount <= 0 {
		return Intent{}, ErrInvalidAmount
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	amountMinor := int64(math.Round(req.Amount * 100))
	return s.creator.CreateIntent(ctx, amountMinor, currency, req.Metadata)
}
