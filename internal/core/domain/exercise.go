package domain

import "time"

// ExerciseDifficulty grades how demanding an exercise is.
type ExerciseDifficulty string

const (
	DifficultyEasy   ExerciseDifficulty = "EASY"
	DifficultyMedium ExerciseDifficulty = "MEDIUM"
	DifficultyHard   ExerciseDifficulty = "HARD"
)

// Exercise belongs to at most one program; ProgramID is nil while the
// exercise is unassigned.
type Exercise struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	Name        string             `json:"name" gorm:"size:255;not null"`
	Difficulty  ExerciseDifficulty `json:"difficulty" gorm:"size:16;not null"`
	Description string             `json:"description,omitempty" gorm:"size:1024"`
	Duration    int                `json:"duration,omitempty"`
	ProgramID   *uint              `json:"programID" gorm:"index"`
	Program     *Program           `json:"program,omitempty" gorm:"foreignKey:ProgramID"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
