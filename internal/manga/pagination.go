package manga

// Paginate slices one page out of an in-memory result set. Pages are
// 1-based; out-of-range pages return an empty slice.
func Paginate[T any](items []T, page, perPage int) []T {
	if page < 1 || perPage < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return nil
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns the page count for a result set.
func TotalPages(total, perPage int) int {
	if perPage < 1 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// VisiblePages returns the windowed middle page numbers around the current
// page, excluding the first and last page (those are always rendered).
func VisiblePages(current, total int) []int {
	start := max(2, current-1)
	end := min(total-1, current+1)

	if end-start < 2 {
		if start == 2 {
			end = min(total-1, start+2)
		} else if end == total-1 {
			start = max(2, end-2)
		}
	}

	var pages []int
	for i := start; i <= end; i++ {
		if i != 1 && i != total {
			pages = append(pages, i)
		}
	}
	return pages
}
