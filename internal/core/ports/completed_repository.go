package ports

import (
	"context"

	"github.com/fittrack/training-api/internal/core/domain"
)

// CompletedExerciseRepository defines persistence operations for workout
// records.
type CompletedExerciseRepository interface {
	Create(ctx context.Context, record *domain.CompletedExercise) (*domain.CompletedExercise, error)
	FindByID(ctx context.Context, id uint) (*domain.CompletedExercise, error)
	// ListByUser returns the user's records newest-first with the
	// exercise association loaded.
	ListByUser(ctx context.Context, userID uint) ([]domain.CompletedExercise, error)
	Delete(ctx context.Context, id uint) error
}
