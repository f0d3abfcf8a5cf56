package profile

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Service assembles profiles from the auth identity plus the remote role
// lookup.
type Service struct {
	repo Repository
	log  logrus.FieldLogger
}

func NewService(repo Repository, log logrus.FieldLogger) *Service {
	return &Service{repo: repo, log: log}
}

// Fetch builds the profile for an authenticated identity. Everyone starts as
// a plain user; the is_admin lookup upgrades the role. When the lookup fails
// the profile stays a plain user: there is deliberately no override identity
// for that case.
func (s *Service) Fetch(ctx context.Context, userID, email string) Profile {
	p := Profile{
		ID:    userID,
		Email: email,
		Role:  RoleUser,
	}

	if createdAt, err := s.repo.GetCreatedAt(ctx, userID); err == nil {
		p.CreatedAt = createdAt
	} else {
		p.CreatedAt = time.Now()
	}

	isAdmin, err := s.repo.IsAdmin(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("admin role lookup failed")
		return p
	}
	if isAdmin {
		p.Role = RoleAdmin
	}
	return p
}

// Role satisfies the route guard's role resolver.
func (s *Service) Role(ctx context.Context, userID, email string) (string, error) {
	return s.Fetch(ctx, userID, email).Role, nil
}

// Update persists mutable profile fields.
func (s *Service) Update(ctx context.Context, userID string, update Update) error {
	return s.repo.Update(ctx, userID, update)
}
