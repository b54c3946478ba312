package ports

import (
	"context"

	"github.com/fittrack/training-api/internal/core/domain"
)

// ProgramRepository defines persistence operations for programs.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (*domain.Program, error)
	FindByID(ctx context.Context, id uint) (*domain.Program, error)
	List(ctx context.Context) ([]domain.Program, error)
	// UpdateName renames the program; ErrProgramNotFound when id is unknown.
	UpdateName(ctx context.Context, id uint, name string) (*domain.Program, error)
	// Delete removes the program; ErrProgramNotFound when id is unknown.
	Delete(ctx context.Context, id uint) error
}
