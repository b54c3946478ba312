package ports

import (
	"context"

	"github.com/fittrack/training-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Name     string
	Surname  string
	NickName string
	Email    string
	Password string
	Age      int
	Role     domain.Role
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed bearer token on success.
	Login(ctx context.Context, email, password string) (string, error)
}
