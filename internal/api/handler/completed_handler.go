package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/training-api/internal/api/metrics"
	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
	"github.com/fittrack/training-api/internal/pkg/i18n"
)

// CompletedExerciseHandler handles workout record tracking and review.
type CompletedExerciseHandler struct {
	service ports.CompletedExerciseService
	bundle  *i18n.Bundle
}

func NewCompletedExerciseHandler(service ports.CompletedExerciseService, bundle *i18n.Bundle) *CompletedExerciseHandler {
	return &CompletedExerciseHandler{service: service, bundle: bundle}
}

// Track handles POST /completed-exercises: records a finished exercise
// with its duration for the authenticated user.
//
// @Summary      Track a completed exercise
// @Tags         completed-exercises
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      trackExerciseRequest  true  "Record"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /completed-exercises [post]
func (h *CompletedExerciseHandler) Track(c echo.Context) error {
	var req trackExerciseRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	caller, err := requester(c)
	if err != nil {
		return err
	}

	record, err := h.service.Track(c.Request().Context(), ports.TrackInput{
		UserID:     caller.ID,
		ExerciseID: req.ExerciseID,
		Duration:   req.Duration,
	})
	if err != nil {
		if errors.Is(err, domain.ErrExerciseNotFound) {
			return domain.NewNotFoundError(h.bundle.Message(language(c), i18n.KeyExerciseNotFound))
		}
		return err
	}

	metrics.ExercisesCompletedTotal.Inc()
	return respond(c, http.StatusCreated, record, h.bundle.Message(language(c), i18n.KeyExerciseTracked))
}

// ListOwn handles GET /completed-exercises/me: the caller's own records,
// newest first.
func (h *CompletedExerciseHandler) ListOwn(c echo.Context) error {
	caller, err := requester(c)
	if err != nil {
		return err
	}

	records, err := h.service.ListOwn(c.Request().Context(), caller.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, records, h.bundle.Message(language(c), i18n.KeyCompletedExerciseList))
}

// UserDetail handles GET /completed-exercises/:id (admin only): a user's
// profile together with their completed exercises.
func (h *CompletedExerciseHandler) UserDetail(c echo.Context) error {
	var req completedIDRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	user, err := h.service.UserDetail(c.Request().Context(), req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.NewNotFoundError(h.bundle.Message(language(c), i18n.KeyUserNotFound))
		}
		return err
	}
	return respond(c, http.StatusOK, user, h.bundle.Message(language(c), i18n.KeyUserDetailWithExercises))
}

// Delete handles DELETE /completed-exercises/:id. Admins may delete any
// record, other callers only their own.
func (h *CompletedExerciseHandler) Delete(c echo.Context) error {
	var req completedIDRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	caller, err := requester(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), req.ID, caller); err != nil {
		lang := language(c)
		switch {
		case errors.Is(err, domain.ErrCompletedExerciseNotFound):
			return domain.NewNotFoundError(h.bundle.Message(lang, i18n.KeyCompletedExerciseNotFound))
		case errors.Is(err, domain.ErrAccessDenied):
			return domain.NewAuthError(http.StatusForbidden, h.bundle.Message(lang, i18n.KeyAccessDenied))
		}
		return err
	}
	return respond(c, http.StatusOK, nil, h.bundle.Message(language(c), i18n.KeyCompletedExerciseDeleted))
}
