package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/training-api/internal/api/metrics"
	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/pkg/i18n"
)

// RequireRole enforces hierarchical role-based access control. It must run
// after Auth; a caller whose role is absent, unrecognized, or ranked below
// min is rejected with 403. Pure predicate, no I/O.
func RequireRole(min domain.Role, bundle *i18n.Bundle) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(domain.Role)
			if !role.AtLeast(min) {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				lang := c.Request().Header.Get(languageHeader)
				return domain.NewAuthError(http.StatusForbidden, bundle.Messagef(lang, i18n.KeyAccessDeniedRole, min))
			}
			return next(c)
		}
	}
}
