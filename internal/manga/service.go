package manga

import (
	"context"
)

// Service provides catalogue business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the full catalogue in the requested order.
func (s *Service) List(ctx context.Context, sort SortOption) ([]Manga, error) {
	return s.repo.List(ctx, sort)
}

// GetBySlug returns a single manga with its reviews.
func (s *Service) GetBySlug(ctx context.Context, slug string) (Manga, error) {
	return s.repo.GetBySlug(ctx, slug)
}
