package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fittrack/training-api/internal/core/domain"
)

// ProgramRepository is the GORM-backed program store.
type ProgramRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) Create(ctx context.Context, program *domain.Program) (*domain.Program, error) {
	if err := r.db.WithContext(ctx).Create(program).Error; err != nil {
		return nil, fmt.Errorf("insert program: %w", err)
	}
	return program, nil
}

func (r *ProgramRepository) FindByID(ctx context.Context, id uint) (*domain.Program, error) {
	var program domain.Program
	if err := r.db.WithContext(ctx).First(&program, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProgramNotFound
		}
		return nil, fmt.Errorf("find program: %w", err)
	}
	return &program, nil
}

func (r *ProgramRepository) List(ctx context.Context) ([]domain.Program, error) {
	var programs []domain.Program
	if err := r.db.WithContext(ctx).Order("id").Find(&programs).Error; err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

func (r *ProgramRepository) UpdateName(ctx context.Context, id uint, name string) (*domain.Program, error) {
	res := r.db.WithContext(ctx).Model(&domain.Program{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return nil, fmt.Errorf("update program: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrProgramNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *ProgramRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Program{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete program: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProgramNotFound
	}
	return nil
}
