package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/training-api/internal/api/metrics"
	"github.com/fittrack/training-api/internal/api/middleware"
	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
	"github.com/fittrack/training-api/internal/pkg/i18n"
)

// language returns the caller's preferred message language. Any
// unrecognized value degrades to the default inside the bundle.
func language(c echo.Context) string {
	return c.Request().Header.Get("language")
}

// requester extracts the identity claim injected by the Auth middleware.
// Presence of a valid role proves the middleware ran.
func requester(c echo.Context) (ports.Requester, error) {
	role, _ := c.Get(middleware.ContextRole).(domain.Role)
	if !role.Valid() {
		return ports.Requester{}, domain.NewAuthError(http.StatusUnauthorized, "missing authentication claims")
	}
	id, _ := c.Get(middleware.ContextUserID).(uint)
	return ports.Requester{ID: id, Role: role}, nil
}

// bindAndValidate binds the request into req and runs its declared field
// rules. All failing rules are collected into one localized validation
// error; nothing is written on failure.
func bindAndValidate(c echo.Context, req any, bundle *i18n.Bundle) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		var fieldErrs FieldErrors
		if errors.As(err, &fieldErrs) {
			if len(fieldErrs) > 0 {
				metrics.ValidationFailuresTotal.WithLabelValues(string(fieldErrs[0].Location)).Inc()
			}
			return domain.NewValidationError(bundle.Message(language(c), i18n.KeyValidationFailed), fieldErrs)
		}
		return err
	}
	return nil
}
