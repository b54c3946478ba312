package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/fittrack/training-api/internal/api/metrics"
	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/pkg/i18n"
)

// Context keys populated by Auth for downstream middleware and handlers.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// languageHeader selects message localization only; it is never enforced.
const languageHeader = "language"

// Auth verifies the bearer token and injects the identity claim into the
// request context. The raw token is never logged or echoed back.
func Auth(jwtSecret string, bundle *i18n.Bundle) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := c.Request().Header.Get(languageHeader)

			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return domain.NewAuthError(http.StatusUnauthorized, bundle.Message(lang, i18n.KeyNoTokenProvided))
			}

			claims := jwt.MapClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !parsed.Valid {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return domain.NewAuthError(http.StatusForbidden, bundle.Message(lang, i18n.KeyInvalidToken))
			}

			id, okID := claims["id"].(float64)
			role, okRole := claims["role"].(string)
			if !okID || !okRole {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return domain.NewAuthError(http.StatusForbidden, bundle.Message(lang, i18n.KeyInvalidToken))
			}

			c.Set(ContextUserID, uint(id))
			c.Set(ContextRole, domain.Role(role))

			return next(c)
		}
	}
}

// bearerToken extracts the credential from an "Authorization: Bearer x"
// header; empty when the header is absent or not in bearer form.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
