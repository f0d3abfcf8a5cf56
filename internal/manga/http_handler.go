package manga

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"mangastore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /catalogue. Sorting happens in the store; category, genre
// and search filtering plus pagination run over the in-memory result, the
// same way the storefront sidebar works.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sort := SortOption(query.Get("sort"))
	switch sort {
	case SortPriceAsc, SortPriceDesc, SortTitle:
	default:
		sort = SortPopularity
	}

	mangas, err := h.service.List(r.Context(), sort)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	opts := FilterOptions{Query: query.Get("q")}
	if categories := query.Get("categories"); categories != "" {
		opts.Categories = strings.Split(categories, ",")
	}
	if genres := query.Get("genres"); genres != "" {
		opts.Genres = strings.Split(genres, ",")
	}
	filtered := Filter(mangas, opts)

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(query.Get("page_size"))
	if perPage <= 0 || perPage > 100 {
		perPage = 12
	}

	httpx.JSONSuccess(w, r, Paginate(filtered, page, perPage), map[string]interface{}{
		"page":        page,
		"page_size":   perPage,
		"total":       len(filtered),
		"total_pages": TotalPages(len(filtered), perPage),
	})
}

// GetBySlug handles GET /manga/{slug}
func (h *HTTPHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" || strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}

	m, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Manga not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, m, nil)
}
