package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
	"github.com/fittrack/training-api/internal/pkg/i18n"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service ports.AuthService
	bundle  *i18n.Bundle
}

func NewAuthHandler(service ports.AuthService, bundle *i18n.Bundle) *AuthHandler {
	return &AuthHandler{service: service, bundle: bundle}
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        language  header    string           false  "Message language (en|sk)"
// @Param        body      body      registerRequest  true   "Registration details"
// @Success      201       {object}  envelope
// @Failure      400       {object}  map[string]any
// @Failure      500       {object}  map[string]any
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Surname:  req.Surname,
		NickName: req.NickName,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return domain.NewConflictError(h.bundle.Message(language(c), i18n.KeyEmailAlreadyRegistered))
		}
		return err
	}

	return respond(c, http.StatusCreated, registerResponse{ID: user.ID}, h.bundle.Message(language(c), i18n.KeyRegistrationSuccess))
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        language  header    string        false  "Message language (en|sk)"
// @Param        body      body      loginRequest  true   "Login credentials"
// @Success      200       {object}  envelope
// @Failure      400       {object}  map[string]any
// @Failure      401       {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req, h.bundle); err != nil {
		return err
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return domain.NewAuthError(http.StatusUnauthorized, h.bundle.Message(language(c), i18n.KeyInvalidCredentials))
		}
		return err
	}

	return respond(c, http.StatusOK, loginResponse{Token: token}, h.bundle.Message(language(c), i18n.KeyLoginSuccess))
}
