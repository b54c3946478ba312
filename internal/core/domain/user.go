package domain

import "time"

// User models a registered account. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Surname   string    `json:"surname" gorm:"size:255;not null"`
	NickName  string    `json:"nickName" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"`
	Age       int       `json:"age" gorm:"not null"`
	Role      Role      `json:"role" gorm:"size:16;default:'USER'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CompletedExercises []CompletedExercise `json:"completedExercises,omitempty" gorm:"foreignKey:UserID"`
}
