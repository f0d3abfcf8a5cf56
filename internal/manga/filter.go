package manga

import (
	"strings"
)

// FilterOptions narrows an in-memory catalogue slice. Empty selections match
// everything, mirroring the storefront's sidebar filters.
type FilterOptions struct {
	Categories []string
	Genres     []string
	Query      string
}

// Filter returns the mangas matching all active filters, preserving order.
func Filter(mangas []Manga, opts FilterOptions) []Manga {
	query := strings.ToLower(opts.Query)

	var out []Manga
	for _, m := range mangas {
		if !matchesCategory(m, opts.Categories) {
			continue
		}
		if !matchesGenre(m, opts.Genres) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(m.Title), query) &&
			!strings.Contains(strings.ToLower(m.Author), query) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func matchesCategory(m Manga, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if m.Category == c {
			return true
		}
	}
	return false
}

func matchesGenre(m Manga, genres []string) bool {
	if len(genres) == 0 {
		return true
	}
	for _, want := range genres {
		for _, have := range m.Genres {
			if have == want {
				return true
			}
		}
	}
	return false
}
