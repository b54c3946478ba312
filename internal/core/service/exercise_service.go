package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
)

const defaultPageLimit = 10

// ExerciseService implements exercise CRUD and the cached listing.
type ExerciseService struct {
	exercises ports.ExerciseRepository
	cache     ports.ExerciseListCache
	log       zerolog.Logger
}

func NewExerciseService(exercises ports.ExerciseRepository, cache ports.ExerciseListCache, log zerolog.Logger) *ExerciseService {
	return &ExerciseService{exercises: exercises, cache: cache, log: log}
}

func (s *ExerciseService) List(ctx context.Context, input ports.ListExercisesInput) (*ports.ListExercisesResult, error) {
	if cached, ok := s.cacheGet(ctx, input); ok {
		return cached, nil
	}

	filter := ports.ExerciseFilter{ProgramID: input.ProgramID, Search: input.Search}
	total, err := s.exercises.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Without explicit paging the whole result set is one page.
	page, limit := 1, int(total)
	if input.Page > 0 || input.Limit > 0 {
		page, limit = 1, defaultPageLimit
		if input.Page >= 1 {
			page = input.Page
		}
		if input.Limit >= 1 {
			limit = input.Limit
		}
	}

	offset := (page - 1) * limit
	if int64(offset) >= total && total > 0 {
		return nil, domain.ErrPageOutOfRange
	}

	items, err := s.exercises.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}

	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	result := &ports.ListExercisesResult{
		Items: items,
		Pagination: ports.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
	}
	s.cacheSet(ctx, input, result)
	return result, nil
}

func (s *ExerciseService) Create(ctx context.Context, input ports.CreateExerciseInput) (*domain.Exercise, error) {
	programID := input.ProgramID
	created, err := s.exercises.Create(ctx, &domain.Exercise{
		Name:       input.Name,
		Difficulty: input.Difficulty,
		ProgramID:  &programID,
	})
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return created, nil
}

func (s *ExerciseService) Update(ctx context.Context, id uint, update ports.ExerciseUpdate) (*domain.Exercise, error) {
	updated, err := s.exercises.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return updated, nil
}

func (s *ExerciseService) Delete(ctx context.Context, id uint) error {
	if err := s.exercises.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// Cache failures degrade to plain repository reads; they are logged and
// never surfaced.
func (s *ExerciseService) cacheGet(ctx context.Context, input ports.ListExercisesInput) (*ports.ListExercisesResult, bool) {
	if s.cache == nil {
		return nil, false
	}
	result, ok, err := s.cache.Get(ctx, input)
	if err != nil {
		s.log.Warn().Err(err).Msg("exercise list cache read failed")
		return nil, false
	}
	return result, ok
}

func (s *ExerciseService) cacheSet(ctx context.Context, input ports.ListExercisesInput, result *ports.ListExercisesResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, input, result); err != nil {
		s.log.Warn().Err(err).Msg("exercise list cache write failed")
	}
}

func (s *ExerciseService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("exercise list cache invalidation failed")
	}
}
