package profile

import (
	"encoding/json"
	"net/http"

	"mangastore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Get handles GET /profile
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	p := h.service.Fetch(r.Context(), userID, httpx.UserEmailFrom(r))
	httpx.JSONSuccess(w, r, p, nil)
}

// Update handles PATCH /profile
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_BODY", "Invalid profile payload", nil)
		return
	}

	if err := h.service.Update(r.Context(), userID, update); err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, h.service.Fetch(r.Context(), userID, httpx.UserEmailFrom(r)), nil)
}
