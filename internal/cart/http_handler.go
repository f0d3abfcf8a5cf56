package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"mangastore/internal/auth"
	"mangastore/internal/httpx"
	"mangastore/internal/stock"
)

type HTTPHandler struct {
	carts  *Manager
	remote auth.SessionSignOuter
	log    logrus.FieldLogger
}

func NewHTTPHandler(carts *Manager, remote auth.SessionSignOuter, log logrus.FieldLogger) *HTTPHandler {
	return &HTTPHandler{carts: carts, remote: remote, log: log}
}

func (h *HTTPHandler) storeFor(w http.ResponseWriter, r *http.Request) (*Store, bool) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return nil, false
	}
	return h.carts.StoreFor(userID), true
}

func stateMeta(state State) map[string]interface{} {
	return map[string]interface{}{
		"totalItems":          state.TotalItems(),
		"totalPrice":          state.TotalPrice(),
		"formattedTotalPrice": state.FormattedTotalPrice(),
	}
}

// Get handles GET /cart
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	store, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	state := store.State()
	httpx.JSONSuccess(w, r, state, stateMeta(state))
}

// AddItem handles POST /cart/items
func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.storeFor(w, r)
	if !ok {
		return
	}

	var info ItemInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil || info.ID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_BODY", "Invalid item payload", nil)
		return
	}

	if err := store.AddItem(r.Context(), info); err != nil {
		var exceeded *StockExceededError
		if errors.As(err, &exceeded) {
			httpx.JSONError(w, r, http.StatusConflict, "STOCK_EXCEEDED",
				stock.Message(exceeded.Available, exceeded.Available+1), nil)
			return
		}
		var unverifiable *StockUnverifiableError
		if errors.As(err, &unverifiable) {
			h.log.WithError(err).Warn("stock lookup failed on add")
			httpx.JSONError(w, r, http.StatusBadGateway, "STOCK_UNVERIFIABLE",
				"Impossible de vérifier le stock pour "+strings.TrimSpace(info.Title), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	state := store.State()
	httpx.JSONSuccessCreated(w, r, state)
}

// UpdateQuantity handles PATCH /cart/items/{id}
func (h *HTTPHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	store, ok := h.storeFor(w, r)
	if !ok {
		return
	}

	itemID := r.PathValue("id")
	if itemID == "" {
		http.NotFound(w, r)
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_BODY", "Invalid quantity payload", nil)
		return
	}

	store.UpdateQuantity(itemID, body.Quantity)
	state := store.State()
	httpx.JSONSuccess(w, r, state, stateMeta(state))
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.storeFor(w, r)
	if !ok {
		return
	}

	itemID := r.PathValue("id")
	if itemID == "" {
		http.NotFound(w, r)
		return
	}

	store.RemoveItem(itemID)
	state := store.State()
	httpx.JSONSuccess(w, r, state, stateMeta(state))
}

// Clear handles POST /cart/clear
func (h *HTTPHandler) Clear(w http.ResponseWriter, r *http.Request) {
	store, ok := h.storeFor(w, r)
	if !ok {
		return
	}

	store.ClearCart()
	state := store.State()
	httpx.JSONSuccess(w, r, state, stateMeta(state))
}

// SignOut handles POST /auth/signout. The cart and its persisted blob are
// cleared before the provider call, so a failed provider sign-out still
// leaves no cart behind.
func (h *HTTPHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	session := &auth.Session{UserID: userID, Token: token, Remote: h.remote}
	coordinator := NewCoordinator(h.carts.StoreFor(userID), session, h.log)

	err := coordinator.SignOut(r.Context())
	h.carts.Drop(userID)
	if err != nil {
		h.log.WithError(err).Warn("provider sign-out failed")
		httpx.JSONError(w, r, http.StatusBadGateway, "SIGNOUT_FAILED", "Sign-out could not be completed upstream", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]interface{}{"signedOut": true}, nil)
}
