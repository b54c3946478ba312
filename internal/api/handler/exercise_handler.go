package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
	"github.com/fittrack/training-api/internal/pkg/i18n"
)

// ExerciseHandler handles exercise CRUD. Listing is public; mutations are
// admin-only (enforced at the route level).
type ExerciseHandler struct {
	service ports.ExerciseService
	bundle  *i18n.Bundle
}

func NewExerciseHandler(service ports.ExerciseService, bundle *i18n.Bundle) *ExerciseHandler {
	return &ExerciseHandler{service: service, bundle: bundle}
}

// List handles GET /exercises with optional pagination, program filter
// and name search.
//
// @Summary      List exercises
// @Tags         exercises
// @Produce      json
// @Param        page       query     int     false  "Page number (1-based)"
// @Param        limit      query     int     false  "Page size"
// @Param        programID  query     int     false  "Filter by program"
// @Param        search     query     string  false  "Name substring filter"
// @Success      200        {object}  pagedEnvelope
// @Failure      404        {object}  map[string]any
// @Router       /exercises [get]
func (h *ExerciseHandler) List(c echo.Context) error {
	var req listExercisesRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	input := ports.ListExercisesInput{ProgramID: req.ProgramID, Search: req.Search}
	if req.Page != nil {
		input.Page = *req.Page
	}
	if req.Limit != nil {
		input.Limit = *req.Limit
	}

	result, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrPageOutOfRange) {
			return domain.NewNotFoundError(h.bundle.Message(language(c), i18n.KeyPageNotFound))
		}
		return err
	}

	return c.JSON(http.StatusOK, pagedEnvelope{
		Data:       result.Items,
		Pagination: result.Pagination,
		Message:    h.bundle.Message(language(c), i18n.KeyExerciseList),
	})
}

// Create handles POST /exercises (admin only).
//
// @Summary      Create an exercise
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createExerciseRequest  true  "Exercise"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Router       /exercises [post]
func (h *ExerciseHandler) Create(c echo.Context) error {
	var req createExerciseRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	exercise, err := h.service.Create(c.Request().Context(), ports.CreateExerciseInput{
		Name:       req.Name,
		Difficulty: domain.ExerciseDifficulty(req.Difficulty),
		ProgramID:  req.ProgramID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, exercise, h.bundle.Message(language(c), i18n.KeyExerciseCreated))
}

// Update handles PUT /exercises/:id (admin only).
func (h *ExerciseHandler) Update(c echo.Context) error {
	var req updateExerciseRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	exercise, err := h.service.Update(c.Request().Context(), req.ID, ports.ExerciseUpdate{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
	})
	if err != nil {
		if errors.Is(err, domain.ErrExerciseNotFound) {
			return domain.NewNotFoundError(h.bundle.Message(language(c), i18n.KeyExerciseNotFound))
		}
		return err
	}
	return respond(c, http.StatusOK, exercise, h.bundle.Message(language(c), i18n.KeyExerciseUpdated))
}

// Delete handles DELETE /exercises/:id (admin only).
func (h *ExerciseHandler) Delete(c echo.Context) error {
	var req exerciseIDRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), req.ID); err != nil {
		if errors.Is(err, domain.ErrExerciseNotFound) {
			return domain.NewNotFoundError(h.bundle.Message(language(c), i18n.KeyExerciseNotFound))
		}
		return err
	}
	return respond(c, http.StatusOK, nil, h.bundle.Message(language(c), i18n.KeyExerciseDeleted))
}
