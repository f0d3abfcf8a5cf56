package manga

import (
	"context"
)

// Repository defines the contract for catalogue data storage.
type Repository interface {
	List(ctx context.Context, sort SortOption) ([]Manga, error)
	GetBySlug(ctx context.Context, slug string) (Manga, error)
}
