package stock

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"mangastore/internal/httpx"
)

type HTTPHandler struct {
	oracle *Oracle
}

func NewHTTPHandler(oracle *Oracle) *HTTPHandler {
	return &HTTPHandler{oracle: oracle}
}

// Get handles GET /stock/{id}: a live single-item fetch, overwriting the
// cached value.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	quantity, _ := strconv.Atoi(r.URL.Query().Get("quantity"))
	if quantity < 1 {
		quantity = 1
	}

	count, err := h.oracle.FetchStock(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Stock not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]interface{}{
		"id":      id,
		"stock":   count,
		"inStock": count >= quantity,
		"message": Message(count, quantity),
	}, nil)
}

// List handles GET /stock?ids=a,b,c: a bulk fetch merged into the cache.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	idsParam := r.URL.Query().Get("ids")
	if idsParam == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_QUERY", "ids is required", nil)
		return
	}
	ids := strings.Split(idsParam, ",")

	h.oracle.FetchStocks(r.Context(), ids)

	counts := make(map[string]int, len(ids))
	for _, id := range ids {
		if count, ok := h.oracle.Cached(id); ok {
			counts[id] = count
		}
	}
	httpx.JSONSuccess(w, r, counts, nil)
}
