package handler

type trackExerciseRequest struct {
	ExerciseID uint `json:"exerciseID" validate:"required,gt=0"`
	Duration   int  `json:"duration"   validate:"required,gt=0"`
}

type completedIDRequest struct {
	ID uint `param:"id" validate:"required,gt=0"`
}
