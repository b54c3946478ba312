package service

import (
	"context"
	"time"

	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
)

// CompletedExerciseService implements workout record use-cases.
type CompletedExerciseService struct {
	completed ports.CompletedExerciseRepository
	exercises ports.ExerciseRepository
	users     ports.UserRepository
	now       func() time.Time
}

func NewCompletedExerciseService(completed ports.CompletedExerciseRepository, exercises ports.ExerciseRepository, users ports.UserRepository) *CompletedExerciseService {
	return &CompletedExerciseService{
		completed: completed,
		exercises: exercises,
		users:     users,
		now:       time.Now,
	}
}

func (s *CompletedExerciseService) Track(ctx context.Context, input ports.TrackInput) (*domain.CompletedExercise, error) {
	exercise, err := s.exercises.FindByID(ctx, input.ExerciseID)
	if err != nil {
		return nil, err
	}

	return s.completed.Create(ctx, &domain.CompletedExercise{
		UserID:      input.UserID,
		ExerciseID:  exercise.ID,
		Duration:    input.Duration,
		CompletedAt: s.now().UTC(),
	})
}

func (s *CompletedExerciseService) ListOwn(ctx context.Context, userID uint) ([]domain.CompletedExercise, error) {
	return s.completed.ListByUser(ctx, userID)
}

func (s *CompletedExerciseService) UserDetail(ctx context.Context, userID uint) (*domain.User, error) {
	return s.users.FindByIDWithCompleted(ctx, userID)
}

// Delete allows admins to remove any record and owners to remove their
// own. Viewing another user's records stays admin-only (route-level); the
// looser rule here is deliberate.
func (s *CompletedExerciseService) Delete(ctx context.Context, id uint, requester ports.Requester) error {
	record, err := s.completed.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if requester.Role != domain.RoleAdmin && record.UserID != requester.ID {
		return domain.ErrAccessDenied
	}
	return s.completed.Delete(ctx, id)
}
