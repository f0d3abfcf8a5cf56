package order

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an order is not found.
var ErrNotFound = errors.New("order not found")

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ItemManga is the denormalized manga display subset carried on order lines.
type ItemManga struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	CoverURL string `json:"cover_url"`
}

type Item struct {
	ID       string    `json:"id"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Manga    ItemManga `json:"manga"`
}

type ShippingAddress struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

type Order struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	Status          Status           `json:"status"`
	Total           float64          `json:"total"`
	CreatedAt       time.Time        `json:"created_at"`
	PaymentIntentID string           `json:"payment_intent_id,omitempty"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
	Items           []Item           `json:"items"`
}

// Stats summarizes a set of orders for the admin dashboard. Revenue counts
// completed orders only.
type Stats struct {
	Total      int     `json:"total"`
	Pending    int     `json:"pending"`
	Processing int     `json:"processing"`
	Completed  int     `json:"completed"`
	Cancelled  int     `json:"cancelled"`
	Revenue    float64 `json:"revenue"`
}

// ComputeStats folds orders into per-status counts and completed revenue.
func ComputeStats(orders []Order) Stats {
	stats := Stats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case StatusPending:
			stats.Pending++
		case StatusProcessing:
			stats.Processing++
		case StatusCompleted:
			stats.Completed++
			stats.Revenue += o.Total
		case StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}

// ByStatus filters orders to one status, preserving order.
func ByStatus(orders []Order, status Status) []Order {
	var out []Order
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// TotalSpent sums the totals of all orders.
func TotalSpent(orders []Order) float64 {
	total := 0.0
	for _, o := range orders {
		total += o.Total
	}
	return total
}
