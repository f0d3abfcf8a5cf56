package order

import (
	"context"
)

// Service provides order business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListForUser returns one user's orders, newest first, with their items.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get returns one order by id.
func (s *Service) Get(ctx context.Context, orderID string) (Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

// UpdateStatus sets an order's status and returns the updated order.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status Status) (Order, error) {
	return s.repo.UpdateStatus(ctx, orderID, status)
}

// StatsForAll computes dashboard stats over every order.
func (s *Service) StatsForAll(ctx context.Context) (Stats, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(orders), nil
}

// Place persists a new order with its items.
func (s *Service) Place(ctx context.Context, o *Order) error {
	return s.repo.Create(ctx, o)
}
