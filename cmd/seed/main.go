package main

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/infrastructure/db/mysql"
	"github.com/fittrack/training-api/internal/pkg/config"
	"github.com/fittrack/training-api/pkg/logger"
)

func ptr(v uint) *uint { return &v }

// Seeds a development database with one admin, a few users, and a small
// set of programs and exercises. Destructive: drops existing tables.
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	db, err := mysql.Connect(cfg.MySQL.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connect")
	}

	if err := db.Migrator().DropTable(
		&domain.CompletedExercise{},
		&domain.Exercise{},
		&domain.Program{},
		&domain.User{},
	); err != nil {
		log.Warn().Err(err).Msg("drop tables")
	}
	if err := mysql.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("mysql migrate")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("test123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}
	password := string(hash)

	users := []domain.User{
		{Name: "Admin", Surname: "Master", NickName: "admin1", Email: "admin@example.com", Password: password, Age: 35, Role: domain.RoleAdmin},
		{Name: "Test 1", Surname: "Surname 1", NickName: "test1", Email: "test1@example.com", Password: password, Age: 28, Role: domain.RoleUser},
		{Name: "Test 2", Surname: "Surname 2", NickName: "test2", Email: "test2@example.com", Password: password, Age: 24, Role: domain.RoleUser},
		{Name: "Test 3", Surname: "Surname 3", NickName: "test3", Email: "test3@example.com", Password: password, Age: 40, Role: domain.RoleUser},
		{Name: "Test 4", Surname: "Surname 4", NickName: "test4", Email: "test4@example.com", Password: password, Age: 30, Role: domain.RoleUser},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatal().Err(err).Msg("seed users")
	}

	programs := []domain.Program{
		{Name: "Program 1"},
		{Name: "Program 2"},
		{Name: "Program 3"},
	}
	if err := db.Create(&programs).Error; err != nil {
		log.Fatal().Err(err).Msg("seed programs")
	}

	exercises := []domain.Exercise{
		{Name: "Exercise 1", Difficulty: domain.DifficultyEasy, ProgramID: ptr(programs[0].ID)},
		{Name: "Exercise 2", Difficulty: domain.DifficultyEasy, ProgramID: ptr(programs[1].ID)},
		{Name: "Exercise 3", Difficulty: domain.DifficultyMedium, ProgramID: ptr(programs[0].ID)},
		{Name: "Exercise 4", Difficulty: domain.DifficultyMedium, ProgramID: ptr(programs[1].ID)},
		{Name: "Exercise 5", Difficulty: domain.DifficultyHard, ProgramID: ptr(programs[2].ID)},
		{Name: "Exercise 6", Difficulty: domain.DifficultyHard, ProgramID: ptr(programs[2].ID)},
	}
	if err := db.Create(&exercises).Error; err != nil {
		log.Fatal().Err(err).Msg("seed exercises")
	}

	now := time.Now().UTC()
	completed := []domain.CompletedExercise{
		{UserID: users[1].ID, ExerciseID: exercises[0].ID, Duration: 300, CompletedAt: now.Add(-48 * time.Hour)},
		{UserID: users[1].ID, ExerciseID: exercises[2].ID, Duration: 450, CompletedAt: now.Add(-24 * time.Hour)},
		{UserID: users[2].ID, ExerciseID: exercises[1].ID, Duration: 600, CompletedAt: now.Add(-12 * time.Hour)},
	}
	if err := db.Create(&completed).Error; err != nil {
		log.Fatal().Err(err).Msg("seed completed exercises")
	}

	log.Info().
		Int("users", len(users)).
		Int("programs", len(programs)).
		Int("exercises", len(exercises)).
		Int("completed", len(completed)).
		Msg("database seeded")
}
