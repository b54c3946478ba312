package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
	"github.com/fittrack/training-api/internal/pkg/i18n"
)

// UserHandler handles account listing and profile access. Get and Update
// apply the self-or-admin rule via the service.
type UserHandler struct {
	service ports.UserService
	bundle  *i18n.Bundle
}

func NewUserHandler(service ports.UserService, bundle *i18n.Bundle) *UserHandler {
	return &UserHandler{service: service, bundle: bundle}
}

// List handles GET /users (admin only).
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      403  {object}  map[string]any
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, users, h.bundle.Message(language(c), i18n.KeyUserList))
}

// Get handles GET /users/:id. A non-admin caller may only read the
// record whose id matches their identity claim.
func (h *UserHandler) Get(c echo.Context) error {
	var req userIDRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	caller, err := requester(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), req.ID, caller)
	if err != nil {
		lang := language(c)
		switch {
		case errors.Is(err, domain.ErrAccessDenied):
			return domain.NewAuthError(http.StatusForbidden, h.bundle.Message(lang, i18n.KeyAccessDenied))
		case errors.Is(err, domain.ErrUserNotFound):
			return domain.NewNotFoundError(h.bundle.Message(lang, i18n.KeyUserNotFound))
		}
		return err
	}
	return respond(c, http.StatusOK, user, h.bundle.Message(language(c), i18n.KeyUserDetails))
}

// Update handles PUT /users/:id under the same self-or-admin rule.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	caller, err := requester(c)
	if err != nil {
		return err
	}

	update := ports.UserUpdate{
		Name:     req.Name,
		Surname:  req.Surname,
		NickName: req.NickName,
		Age:      req.Age,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		update.Role = &role
	}

	user, err := h.service.Update(c.Request().Context(), req.ID, update, caller)
	if err != nil {
		lang := language(c)
		switch {
		case errors.Is(err, domain.ErrAccessDenied):
			return domain.NewAuthError(http.StatusForbidden, h.bundle.Message(lang, i18n.KeyAccessDenied))
		case errors.Is(err, domain.ErrUserNotFound):
			return domain.NewNotFoundError(h.bundle.Message(lang, i18n.KeyUserNotFound))
		}
		return err
	}
	return respond(c, http.StatusOK, user, h.bundle.Message(language(c), i18n.KeyUserUpdated))
}
