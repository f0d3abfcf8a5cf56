package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"mangastore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /orders (the authenticated user's orders).
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	orders, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, orders, map[string]interface{}{
		"total":      len(orders),
		"totalSpent": TotalSpent(orders),
	})
}

// Get handles GET /orders/{id}. Users only see their own orders.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	orderID := r.PathValue("id")
	if orderID == "" {
		http.NotFound(w, r)
		return
	}

	o, err := h.service.Get(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if o.UserID != userID {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
		return
	}
	httpx.JSONSuccess(w, r, o, nil)
}

// UpdateStatus handles PATCH /orders/{id}/status (admin only; gated in routing).
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("id")
	if orderID == "" {
		http.NotFound(w, r)
		return
	}

	var body struct {
		Status Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !ValidStatus(body.Status) {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_BODY", "Invalid status", nil)
		return
	}

	o, err := h.service.UpdateStatus(r.Context(), orderID, body.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, o, nil)
}

// Stats handles GET /orders/stats (admin only; gated in routing).
func (h *HTTPHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.StatsForAll(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, stats, nil)
}
