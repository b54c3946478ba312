package domain

import "time"

// Program is a named collection of exercises curated by administrators.
type Program struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Exercises []Exercise `json:"exercises,omitempty" gorm:"foreignKey:ProgramID"`
}
