package ports

import (
	"context"

	"github.com/fittrack/training-api/internal/core/domain"
)

// ProgramService defines use-case operations for programs, including the
// program/exercise assignment pair.
type ProgramService interface {
	List(ctx context.Context) ([]domain.Program, error)
	Create(ctx context.Context, name string) (*domain.Program, error)
	Update(ctx context.Context, id uint, name string) (*domain.Program, error)
	Delete(ctx context.Context, id uint) error
	// AddExercise links the exercise to the program. Returns
	// ErrExerciseAlreadyInProgram when the exercise is already linked to
	// that same program; the store is left unchanged in that case.
	AddExercise(ctx context.Context, programID, exerciseID uint) (*domain.Exercise, error)
	// RemoveExercise detaches the exercise from its program.
	RemoveExercise(ctx context.Context, programID, exerciseID uint) (*domain.Exercise, error)
}
