package handler

type createProgramRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateProgramRequest struct {
	ID   uint   `param:"id"   validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`
}

type programIDRequest struct {
	ID uint `param:"id" validate:"required,gt=0"`
}

type assignExerciseRequest struct {
	ProgramID  uint `param:"programId"  validate:"required,gt=0"`
	ExerciseID uint `param:"exerciseId" validate:"required,gt=0"`
}
