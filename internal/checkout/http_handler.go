package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"mangastore/internal/httpx"
	"mangastore/internal/payment"
)

type HTTPHandler struct {
	service *Service
	log     logrus.FieldLogger
}

func NewHTTPHandler(service *Service, log logrus.FieldLogger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Checkout handles POST /checkout. A cart that fails stock validation comes
// back as 422 with one detail line per problem item.
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentification requise", nil)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_BODY", "Requête invalide", nil)
		return
	}

	result, err := h.service.Checkout(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			httpx.JSONError(w, r, http.StatusBadRequest, "EMPTY_CART", "Votre panier est vide", nil)
			return
		}
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			details := make([]httpx.ErrorDetail, 0, len(validationErr.Result.Errors))
			for _, msg := range validationErr.Result.Errors {
				details = append(details, httpx.ErrorDetail{Field: "items", Message: msg})
			}
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "STOCK_VALIDATION_FAILED",
				"Certains articles ne sont plus disponibles", details)
			return
		}
		if errors.Is(err, payment.ErrInvalidAmount) {
			httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_AMOUNT", "Montant invalide", nil)
			return
		}
		h.log.WithError(err).WithField("user_id", userID).Error("checkout failed")
		httpx.JSONError(w, r, http.StatusInternalServerError, "CHECKOUT_FAILED", "Erreur lors de la commande", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, result)
}
