package cart

import (
	"strconv"
)

// Item is one distinct product entry in the cart. Display fields are
// snapshotted at add-time and are not live-synced with the catalogue.
type Item struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Price    float64 `json:"price"`
	Cover    string  `json:"cover"`
	Slug     string  `json:"slug"`
	Quantity int     `json:"quantity"`
}

// ItemInfo describes a product to add to the cart, without a quantity.
type ItemInfo struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price"`
	Cover  string  `json:"cover"`
	Slug   string  `json:"slug"`
}

// State is the serializable cart snapshot: line items in insertion order
// plus the drawer flag.
type State struct {
	Items  []Item `json:"items"`
	IsOpen bool   `json:"isOpen"`
}

// TotalItems is the sum of all line quantities.
func (s State) TotalItems() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all lines.
func (s State) TotalPrice() float64 {
	total := 0.0
	for _, item := range s.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// FormattedTotalPrice renders the total with two decimals.
func (s State) FormattedTotalPrice() string {
	return strconv.FormatFloat(s.TotalPrice(), 'f', 2, 64)
}

func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}
