package domain

import "time"

// CompletedExercise records one finished workout: who, what, how long.
type CompletedExercise struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userID" gorm:"index;not null"`
	ExerciseID  uint      `json:"exerciseID" gorm:"index;not null"`
	Duration    int       `json:"duration" gorm:"not null"` // seconds
	CompletedAt time.Time `json:"completedAt" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Exercise *Exercise `json:"exercise,omitempty" gorm:"foreignKey:ExerciseID"`
}

// TableName keeps the snake_case table name used by the seeded schema.
func (CompletedExercise) TableName() string { return "completed_exercises" }
