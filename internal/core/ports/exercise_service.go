package ports

import (
	"context"

	"github.com/fittrack/training-api/internal/core/domain"
)

// ListExercisesInput carries all parameters for the list endpoint.
// Page and Limit at zero mean "return everything on one page".
type ListExercisesInput struct {
	Page      int
	Limit     int
	ProgramID *uint
	Search    string
}

// Pagination describes the returned page.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// ListExercisesResult is returned by List.
type ListExercisesResult struct {
	Items      []domain.Exercise `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

// CreateExerciseInput carries the data needed to create an exercise.
type CreateExerciseInput struct {
	Name       string
	Difficulty domain.ExerciseDifficulty
	ProgramID  uint
}

// ExerciseService defines use-case operations for exercises.
type ExerciseService interface {
	// List returns ErrPageOutOfRange when the requested page starts past
	// the last record of a non-empty result set.
	List(ctx context.Context, input ListExercisesInput) (*ListExercisesResult, error)
	Create(ctx context.Context, input CreateExerciseInput) (*domain.Exercise, error)
	Update(ctx context.Context, id uint, update ExerciseUpdate) (*domain.Exercise, error)
	Delete(ctx context.Context, id uint) error
}

// ExerciseListCache caches list pages. Implementations must be safe to
// skip: callers treat cache errors as misses.
type ExerciseListCache interface {
	Get(ctx context.Context, query ListExercisesInput) (*ListExercisesResult, bool, error)
	Set(ctx context.Context, query ListExercisesInput, result *ListExercisesResult) error
	Invalidate(ctx context.Context) error
}
