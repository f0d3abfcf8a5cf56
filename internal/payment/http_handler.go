package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"

	"mangastore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	log     logrus.FieldLogger
}

func NewHTTPHandler(service *Service, log logrus.FieldLogger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// CreateIntent handles POST /create-payment-intent. Provider-rejected
// payments come back as 400 with the provider's message; anything else is a
// 500.
func (h *HTTPHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req IntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_BODY", "Montant invalide", nil)
		return
	}

	intent, err := h.service.CreateIntent(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_AMOUNT", "Montant invalide", nil)
			return
		}
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			httpx.JSONError(w, r, http.StatusBadRequest, "PAYMENT_ERROR", stripeErr.Msg, nil)
			return
		}
		h.log.WithError(err).Error("creating payment intent failed")
		httpx.JSONError(w, r, http.StatusInternalServerError, "PAYMENT_FAILED", "Erreur lors de la création du paiement", nil)
		return
	}

	httpx.JSONSuccess(w, r, intent, nil)
}
