package ports

import (
	"context"

	"github.com/fittrack/training-api/internal/core/domain"
)

// UserUpdate carries the optional fields of a profile update; nil means
// "leave unchanged".
type UserUpdate struct {
	Name     *string
	Surname  *string
	NickName *string
	Age      *int
	Role     *domain.Role
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	// FindByIDWithCompleted loads the user together with their completed
	// exercises and the underlying exercise rows.
	FindByIDWithCompleted(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id uint, update UserUpdate) (*domain.User, error)
}
