package ports

import (
	"context"

	"github.com/fittrack/training-api/internal/core/domain"
)

// Requester identifies the authenticated caller for ownership checks.
type Requester struct {
	ID   uint
	Role domain.Role
}

// UserService defines profile use-cases. Get and Update enforce the
// self-or-admin rule against the requester.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id uint, requester Requester) (*domain.User, error)
	Update(ctx context.Context, id uint, update UserUpdate, requester Requester) (*domain.User, error)
}
