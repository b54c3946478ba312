package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
)

// ProgramService implements program CRUD and exercise assignment.
type ProgramService struct {
	programs  ports.ProgramRepository
	exercises ports.ExerciseRepository
	cache     ports.ExerciseListCache
	log       zerolog.Logger
}

func NewProgramService(programs ports.ProgramRepository, exercises ports.ExerciseRepository, cache ports.ExerciseListCache, log zerolog.Logger) *ProgramService {
	return &ProgramService{programs: programs, exercises: exercises, cache: cache, log: log}
}

func (s *ProgramService) List(ctx context.Context) ([]domain.Program, error) {
	return s.programs.List(ctx)
}

func (s *ProgramService) Create(ctx context.Context, name string) (*domain.Program, error) {
	return s.programs.Create(ctx, &domain.Program{Name: name})
}

func (s *ProgramService) Update(ctx context.Context, id uint, name string) (*domain.Program, error) {
	return s.programs.UpdateName(ctx, id, name)
}

func (s *ProgramService) Delete(ctx context.Context, id uint) error {
	return s.programs.Delete(ctx, id)
}

func (s *ProgramService) AddExercise(ctx context.Context, programID, exerciseID uint) (*domain.Exercise, error) {
	if _, err := s.programs.FindByID(ctx, programID); err != nil {
		return nil, err
	}

	exercise, err := s.exercises.FindByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	// Advisory check only: a concurrent writer may race it, which the
	// domain tolerates.
	if exercise.ProgramID != nil && *exercise.ProgramID == programID {
		return nil, domain.ErrExerciseAlreadyInProgram
	}

	updated, err := s.exercises.SetProgram(ctx, exerciseID, &programID)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return updated, nil
}

func (s *ProgramService) RemoveExercise(ctx context.Context, programID, exerciseID uint) (*domain.Exercise, error) {
	if _, err := s.exercises.FindByID(ctx, exerciseID); err != nil {
		return nil, err
	}

	updated, err := s.exercises.SetProgram(ctx, exerciseID, nil)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return updated, nil
}

func (s *ProgramService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("exercise list cache invalidation failed")
	}
}
