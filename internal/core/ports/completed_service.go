package ports

import (
	"context"

	"github.com/fittrack/training-api/internal/core/domain"
)

// TrackInput records one finished exercise for the authenticated user.
type TrackInput struct {
	UserID     uint
	ExerciseID uint
	// Duration is in seconds.
	Duration int
}

// CompletedExerciseService defines use-cases around workout records.
type CompletedExerciseService interface {
	// Track returns ErrExerciseNotFound when the referenced exercise
	// does not exist; nothing is written in that case.
	Track(ctx context.Context, input TrackInput) (*domain.CompletedExercise, error)
	ListOwn(ctx context.Context, userID uint) ([]domain.CompletedExercise, error)
	// UserDetail loads a user together with their completed exercises.
	UserDetail(ctx context.Context, userID uint) (*domain.User, error)
	// Delete removes a record. Admins may delete any record, other
	// callers only their own; ErrAccessDenied otherwise.
	Delete(ctx context.Context, id uint, requester Requester) error
}
