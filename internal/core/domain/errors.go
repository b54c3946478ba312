package domain

import "errors"

// Sentinel errors returned by services and repositories. Handlers translate
// them into AppError values with localized messages.
var (
	ErrUserNotFound              = errors.New("user not found")
	ErrUserExists                = errors.New("user already exists")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrAccessDenied              = errors.New("access denied")
	ErrProgramNotFound           = errors.New("program not found")
	ErrExerciseNotFound          = errors.New("exercise not found")
	ErrCompletedExerciseNotFound = errors.New("completed exercise not found")
	ErrExerciseAlreadyInProgram  = errors.New("exercise already added to program")
	ErrPageOutOfRange            = errors.New("page does not exist")
)
