package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
	"github.com/fittrack/training-api/internal/pkg/i18n"
)

// ProgramHandler handles program CRUD and exercise assignment.
type ProgramHandler struct {
	service ports.ProgramService
	bundle  *i18n.Bundle
}

func NewProgramHandler(service ports.ProgramService, bundle *i18n.Bundle) *ProgramHandler {
	return &ProgramHandler{service: service, bundle: bundle}
}

// List handles GET /programs.
//
// @Summary      List programs
// @Tags         programs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /programs [get]
func (h *ProgramHandler) List(c echo.Context) error {
	programs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, programs, h.bundle.Message(language(c), i18n.KeyProgramList))
}

// Create handles POST /programs (admin only).
//
// @Summary      Create a program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProgramRequest  true  "Program"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Router       /programs [post]
func (h *ProgramHandler) Create(c echo.Context) error {
	var req createProgramRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	program, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, program, h.bundle.Message(language(c), i18n.KeyProgramCreated))
}

// Update handles PUT /programs/:id (admin only).
func (h *ProgramHandler) Update(c echo.Context) error {
	var req updateProgramRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	program, err := h.service.Update(c.Request().Context(), req.ID, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrProgramNotFound) {
			return domain.NewNotFoundError(h.bundle.Message(language(c), i18n.KeyProgramNotFound))
		}
		return err
	}
	return respond(c, http.StatusOK, program, h.bundle.Message(language(c), i18n.KeyProgramUpdated))
}

// Delete handles DELETE /programs/:id (admin only).
func (h *ProgramHandler) Delete(c echo.Context) error {
	var req programIDRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), req.ID); err != nil {
		if errors.Is(err, domain.ErrProgramNotFound) {
			return domain.NewNotFoundError(h.bundle.Message(language(c), i18n.KeyProgramNotFound))
		}
		return err
	}
	return respond(c, http.StatusOK, nil, h.bundle.Message(language(c), i18n.KeyProgramDeleted))
}

// AddExercise handles PUT /programs/:programId/add-exercise/:exerciseId
// (admin only). Re-adding an exercise to the program it already belongs
// to is a conflict and leaves the store unchanged.
func (h *ProgramHandler) AddExercise(c echo.Context) error {
	var req assignExerciseRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	exercise, err := h.service.AddExercise(c.Request().Context(), req.ProgramID, req.ExerciseID)
	if err != nil {
		lang := language(c)
		switch {
		case errors.Is(err, domain.ErrProgramNotFound):
			return domain.NewNotFoundError(h.bundle.Message(lang, i18n.KeyProgramNotFound))
		case errors.Is(err, domain.ErrExerciseNotFound):
			return domain.NewNotFoundError(h.bundle.Message(lang, i18n.KeyExerciseNotFound))
		case errors.Is(err, domain.ErrExerciseAlreadyInProgram):
			return domain.NewConflictError(h.bundle.Message(lang, i18n.KeyExerciseAlreadyInProgram))
		}
		return err
	}
	return respond(c, http.StatusOK, exercise, h.bundle.Message(language(c), i18n.KeyExerciseAddedToProgram))
}

// RemoveExercise handles PUT /programs/:programId/remove-exercise/:exerciseId
// (admin only).
func (h *ProgramHandler) RemoveExercise(c echo.Context) error {
	var req assignExerciseRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	exercise, err := h.service.RemoveExercise(c.Request().Context(), req.ProgramID, req.ExerciseID)
	if err != nil {
		if errors.Is(err, domain.ErrExerciseNotFound) {
			return domain.NewNotFoundError(h.bundle.Message(language(c), i18n.KeyExerciseNotFound))
		}
		return err
	}
	return respond(c, http.StatusOK, exercise, h.bundle.Message(language(c), i18n.KeyExerciseRemovedFromProgram))
}
