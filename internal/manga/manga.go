package manga

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a manga is not found.
var ErrNotFound = errors.New("manga not found")

// Review is a customer review attached to a manga. Author is an alias built
// from the reviewer's user id; real identities are never exposed.
type Review struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
	Avatar  string    `json:"avatar"`
}

// Specifications are the physical details shown on the product page.
type Specifications struct {
	Format   string `json:"format"`
	Pages    int    `json:"pages"`
	Language string `json:"language"`
	ISBN     string `json:"isbn"`
}

// Manga is a catalogue entry.
type Manga struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Author         string         `json:"author"`
	Price          float64        `json:"price"`
	Rating         float64        `json:"rating"`
	Cover          string         `json:"cover"`
	Stock          int            `json:"stock"`
	Slug           string         `json:"slug"`
	Category       string         `json:"category"`
	Genres         []string       `json:"genres"`
	Description    string         `json:"description"`
	Publisher      string         `json:"publisher,omitempty"`
	ReleaseDate    string         `json:"releaseDate,omitempty"`
	Specifications Specifications `json:"specifications"`
	Reviews        []Review       `json:"reviews,omitempty"`
}

// SortOption selects the catalogue ordering.
type SortOption string

const (
	SortPopularity SortOption = "popularity"
	SortPriceAsc   SortOption = "price-asc"
	SortPriceDesc  SortOption = "price-desc"
	SortTitle      SortOption = "title"
)
