package service

import (
	"context"

	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
)

// Function-field stubs: tests set only the methods they expect to be hit.

type userRepoStub struct {
	create              func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByID            func(ctx context.Context, id uint) (*domain.User, error)
	findByIDWithLoaded  func(ctx context.Context, id uint) (*domain.User, error)
	findByEmail         func(ctx context.Context, email string) (*domain.User, error)
	list                func(ctx context.Context) ([]domain.User, error)
	update              func(ctx context.Context, id uint, update ports.UserUpdate) (*domain.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.create(ctx, user)
}
func (s *userRepoStub) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	return s.findByID(ctx, id)
}
func (s *userRepoStub) FindByIDWithCompleted(ctx context.Context, id uint) (*domain.User, error) {
	return s.findByIDWithLoaded(ctx, id)
}
func (s *userRepoStub) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmail(ctx, email)
}
func (s *userRepoStub) List(ctx context.Context) ([]domain.User, error) {
	return s.list(ctx)
}
func (s *userRepoStub) Update(ctx context.Context, id uint, update ports.UserUpdate) (*domain.User, error) {
	return s.update(ctx, id, update)
}

type exerciseRepoStub struct {
	create     func(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	findByID   func(ctx context.Context, id uint) (*domain.Exercise, error)
	count      func(ctx context.Context, filter ports.ExerciseFilter) (int64, error)
	list       func(ctx context.Context, filter ports.ExerciseFilter, offset, limit int) ([]domain.Exercise, error)
	update     func(ctx context.Context, id uint, update ports.ExerciseUpdate) (*domain.Exercise, error)
	delete     func(ctx context.Context, id uint) error
	setProgram func(ctx context.Context, id uint, programID *uint) (*domain.Exercise, error)
}

func (s *exerciseRepoStub) Create(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	return s.create(ctx, exercise)
}
func (s *exerciseRepoStub) FindByID(ctx context.Context, id uint) (*domain.Exercise, error) {
	return s.findByID(ctx, id)
}
func (s *exerciseRepoStub) Count(ctx context.Context, filter ports.ExerciseFilter) (int64, error) {
	return s.count(ctx, filter)
}
func (s *exerciseRepoStub) List(ctx context.Context, filter ports.ExerciseFilter, offset, limit int) ([]domain.Exercise, error) {
	return s.list(ctx, filter, offset, limit)
}
func (s *exerciseRepoStub) Update(ctx context.Context, id uint, update ports.ExerciseUpdate) (*domain.Exercise, error) {
	return s.update(ctx, id, update)
}
func (s *exerciseRepoStub) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}
func (s *exerciseRepoStub) SetProgram(ctx context.Context, id uint, programID *uint) (*domain.Exercise, error) {
	return s.setProgram(ctx, id, programID)
}

type programRepoStub struct {
	create     func(ctx context.Context, program *domain.Program) (*domain.Program, error)
	findByID   func(ctx context.Context, id uint) (*domain.Program, error)
	list       func(ctx context.Context) ([]domain.Program, error)
	updateName func(ctx context.Context, id uint, name string) (*domain.Program, error)
	delete     func(ctx context.Context, id uint) error
}

func (s *programRepoStub) Create(ctx context.Context, program *domain.Program) (*domain.Program, error) {
	return s.create(ctx, program)
}
func (s *programRepoStub) FindByID(ctx context.Context, id uint) (*domain.Program, error) {
	return s.findByID(ctx, id)
}
func (s *programRepoStub) List(ctx context.Context) ([]domain.Program, error) {
	return s.list(ctx)
}
func (s *programRepoStub) UpdateName(ctx context.Context, id uint, name string) (*domain.Program, error) {
	return s.updateName(ctx, id, name)
}
func (s *programRepoStub) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}

type completedRepoStub struct {
	create     func(ctx context.Context, record *domain.CompletedExercise) (*domain.CompletedExercise, error)
	findByID   func(ctx context.Context, id uint) (*domain.CompletedExercise, error)
	listByUser func(ctx context.Context, userID uint) ([]domain.CompletedExercise, error)
	delete     func(ctx context.Context, id uint) error
}

func (s *completedRepoStub) Create(ctx context.Context, record *domain.CompletedExercise) (*domain.CompletedExercise, error) {
	return s.create(ctx, record)
}
func (s *completedRepoStub) FindByID(ctx context.Context, id uint) (*domain.CompletedExercise, error) {
	return s.findByID(ctx, id)
}
func (s *completedRepoStub) ListByUser(ctx context.Context, userID uint) ([]domain.CompletedExercise, error) {
	return s.listByUser(ctx, userID)
}
func (s *completedRepoStub) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}

type listCacheStub struct {
	get         func(ctx context.Context, query ports.ListExercisesInput) (*ports.ListExercisesResult, bool, error)
	set         func(ctx context.Context, query ports.ListExercisesInput, result *ports.ListExercisesResult) error
	invalidated int
}

func (s *listCacheStub) Get(ctx context.Context, query ports.ListExercisesInput) (*ports.ListExercisesResult, bool, error) {
	if s.get == nil {
		return nil, false, nil
	}
	return s.get(ctx, query)
}
func (s *listCacheStub) Set(ctx context.Context, query ports.ListExercisesInput, result *ports.ListExercisesResult) error {
	if s.set == nil {
		return nil
	}
	return s.set(ctx, query, result)
}
func (s *listCacheStub) Invalidate(ctx context.Context) error {
	s.invalidated++
	return nil
}
