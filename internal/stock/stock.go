package stock

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an item has no stock row in the remote store.
var ErrNotFound = errors.New("stock not found")

// Info is the remote stock row for one item.
type Info struct {
	ID    string
	Title string
	Stock int
}

// Message renders the user-facing stock label for a known count, given the
// quantity the caller wants.
func Message(count, quantity int) string {
	plural := ""
	if count > 1 {
		plural = "s"
	}
	switch {
	case count == 0:
		return "Rupture de stock"
	case count < quantity:
		return fmt.Sprintf("Stock insuffisant (%d disponible%s)", count, plural)
	case count <= 5:
		return fmt.Sprintf("Stock limité (%d restant%s)", count, plural)
	default:
		return fmt.Sprintf("En stock (%d disponible%s)", count, plural)
	}
}
