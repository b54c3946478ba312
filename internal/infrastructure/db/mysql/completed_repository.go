package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fittrack/training-api/internal/core/domain"
)

// CompletedExerciseRepository is the GORM-backed workout record store.
type CompletedExerciseRepository struct {
	db *gorm.DB
}

func NewCompletedExerciseRepository(db *gorm.DB) *CompletedExerciseRepository {
	return &CompletedExerciseRepository{db: db}
}

func (r *CompletedExerciseRepository) Create(ctx context.Context, record *domain.CompletedExercise) (*domain.CompletedExercise, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("insert completed exercise: %w", err)
	}
	return record, nil
}

func (r *CompletedExerciseRepository) FindByID(ctx context.Context, id uint) (*domain.CompletedExercise, error) {
	var record domain.CompletedExercise
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompletedExerciseNotFound
		}
		return nil, fmt.Errorf("find completed exercise: %w", err)
	}
	return &record, nil
}

func (r *CompletedExerciseRepository) ListByUser(ctx context.Context, userID uint) ([]domain.CompletedExercise, error) {
	var records []domain.CompletedExercise
	err := r.db.WithContext(ctx).
		Preload("Exercise").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list completed exercises: %w", err)
	}
	return records, nil
}

func (r *CompletedExerciseRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.CompletedExercise{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete completed exercise: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCompletedExerciseNotFound
	}
	return nil
}
