package mysql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
)

// ExerciseRepository is the GORM-backed exercise store.
type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if err := r.db.WithContext(ctx).Create(exercise).Error; err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}
	return exercise, nil
}

func (r *ExerciseRepository) FindByID(ctx context.Context, id uint) (*domain.Exercise, error) {
	var exercise domain.Exercise
	if err := r.db.WithContext(ctx).First(&exercise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise: %w", err)
	}
	return &exercise, nil
}

func (r *ExerciseRepository) Count(ctx context.Context, filter ports.ExerciseFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, filter).Model(&domain.Exercise{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	return count, nil
}

func (r *ExerciseRepository) List(ctx context.Context, filter ports.ExerciseFilter, offset, limit int) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	err := r.filtered(ctx, filter).
		Preload("Program").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

func (r *ExerciseRepository) Update(ctx context.Context, id uint, update ports.ExerciseUpdate) (*domain.Exercise, error) {
	fields := map[string]any{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Duration != nil {
		fields["duration"] = *update.Duration
	}

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&domain.Exercise{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, fmt.Errorf("update exercise: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, domain.ErrExerciseNotFound
		}
	}
	return r.FindByID(ctx, id)
}

func (r *ExerciseRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Exercise{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete exercise: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrExerciseNotFound
	}
	return nil
}

func (r *ExerciseRepository) SetProgram(ctx context.Context, id uint, programID *uint) (*domain.Exercise, error) {
	res := r.db.WithContext(ctx).Model(&domain.Exercise{}).Where("id = ?", id).Update("program_id", programID)
	if res.Error != nil {
		return nil, fmt.Errorf("set exercise program: %w", res.Error)
	}
	return r.FindByID(ctx, id)
}

func (r *ExerciseRepository) filtered(ctx context.Context, filter ports.ExerciseFilter) *gorm.DB {
	q := r.db.WithContext(ctx)
	if filter.ProgramID != nil {
		q = q.Where("program_id = ?", *filter.ProgramID)
	}
	if filter.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	return q
}
