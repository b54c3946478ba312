package ports

import (
	"context"

	"github.com/fittrack/training-api/internal/core/domain"
)

// ExerciseFilter restricts a listing query.
type ExerciseFilter struct {
	ProgramID *uint
	// Search matches the exercise name, case-insensitively, as a substring.
	Search string
}

// ExerciseUpdate carries the optional fields of an exercise update.
type ExerciseUpdate struct {
	Name        *string
	Description *string
	Duration    *int
}

// ExerciseRepository defines persistence operations for exercises.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	FindByID(ctx context.Context, id uint) (*domain.Exercise, error)
	Count(ctx context.Context, filter ExerciseFilter) (int64, error)
	// List returns a page ordered newest-first, with the owning program
	// association loaded.
	List(ctx context.Context, filter ExerciseFilter, offset, limit int) ([]domain.Exercise, error)
	Update(ctx context.Context, id uint, update ExerciseUpdate) (*domain.Exercise, error)
	Delete(ctx context.Context, id uint) error
	// SetProgram moves the exercise into a program (or out of any, when
	// programID is nil).
	SetProgram(ctx context.Context, id uint, programID *uint) (*domain.Exercise, error)
}
