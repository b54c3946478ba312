package handler

type listExercisesRequest struct {
	Page      *int   `query:"page"      validate:"omitempty,gt=0"`
	Limit     *int   `query:"limit"     validate:"omitempty,gt=0"`
	ProgramID *uint  `query:"programID" validate:"omitempty,gt=0"`
	Search    string `query:"search"`
}

type createExerciseRequest struct {
	Name       string `json:"name"       validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof=EASY MEDIUM HARD"`
	ProgramID  uint   `json:"programID"  validate:"required,gt=0"`
}

type updateExerciseRequest struct {
	ID          uint    `param:"id"         validate:"required,gt=0"`
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Duration    *int    `json:"duration"    validate:"omitempty,gt=0"`
}

type exerciseIDRequest struct {
	ID uint `param:"id" validate:"required,gt=0"`
}
