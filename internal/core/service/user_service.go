package service

import (
	"context"

	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
)

// UserService implements profile use-cases with the self-or-admin rule.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint, requester ports.Requester) (*domain.User, error) {
	if err := requireSelfOrAdmin(id, requester); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id uint, update ports.UserUpdate, requester ports.Requester) (*domain.User, error) {
	if err := requireSelfOrAdmin(id, requester); err != nil {
		return nil, err
	}
	if update.Role != nil && !update.Role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}
	return s.users.Update(ctx, id, update)
}

// requireSelfOrAdmin is the explicit ownership check: a non-admin may only
// touch the record whose id equals their identity claim's id.
func requireSelfOrAdmin(targetID uint, requester ports.Requester) error {
	if requester.Role == domain.RoleAdmin {
		return nil
	}
	if requester.ID != targetID {
		return domain.ErrAccessDenied
	}
	return nil
}
