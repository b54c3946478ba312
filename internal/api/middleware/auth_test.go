package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/pkg/i18n"
)

func testBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	b, err := i18n.NewBundle()
	if err != nil {
		t.Fatalf("NewBundle: %v", err)
	}
	return b
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newAuthContext(e *echo.Echo, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "secret", jwt.MapClaims{
		"id":   float64(42),
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	c, rec := newAuthContext(e, map[string]string{"Authorization": "Bearer " + signed})

	called := false
	mw := Auth("secret", testBundle(t))
	handler := mw(func(c echo.Context) error {
		called = true
		if id, _ := c.Get(ContextUserID).(uint); id != 42 {
			t.Fatalf("user_id = %v", c.Get(ContextUserID))
		}
		if role, _ := c.Get(ContextRole).(domain.Role); role != domain.RoleAdmin {
			t.Fatalf("role = %v", c.Get(ContextRole))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	c, _ := newAuthContext(e, nil)

	mw := Auth("secret", testBundle(t))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", appErr.Status)
	}
	if appErr.Message != "No token provided" {
		t.Fatalf("message = %q", appErr.Message)
	}
}

func TestAuth_MissingHeaderLocalized(t *testing.T) {
	e := echo.New()
	c, _ := newAuthContext(e, map[string]string{"language": "sk"})

	mw := Auth("secret", testBundle(t))
	err := mw(func(c echo.Context) error { return nil })(c)

	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Message != "Token nebol poskytnutý" {
		t.Fatalf("message = %q", appErr.Message)
	}
}

func TestAuth_NonBearerHeader(t *testing.T) {
	e := echo.New()
	c, _ := newAuthContext(e, map[string]string{"Authorization": "Token abc"})

	mw := Auth("secret", testBundle(t))
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", appErr.Status)
	}
}

func TestAuth_MalformedToken(t *testing.T) {
	e := echo.New()
	c, _ := newAuthContext(e, map[string]string{"Authorization": "Bearer not-a-token"})

	mw := Auth("secret", testBundle(t))
	err := mw(func(c echo.Context) error {
		t.Fatalf("claim must never be attached for a bad token")
		return nil
	})(c)

	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", appErr.Status)
	}
	if appErr.Message != "Invalid token" {
		t.Fatalf("message = %q", appErr.Message)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "secret", jwt.MapClaims{
		"id":   float64(7),
		"role": "USER",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	c, _ := newAuthContext(e, map[string]string{"Authorization": "Bearer " + signed})

	mw := Auth("secret", testBundle(t))
	err := mw(func(c echo.Context) error {
		t.Fatalf("claim must never be attached for an expired token")
		return nil
	})(c)

	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", appErr.Status)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "other-secret", jwt.MapClaims{
		"id":   float64(7),
		"role": "USER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	c, _ := newAuthContext(e, map[string]string{"Authorization": "Bearer " + signed})

	mw := Auth("secret", testBundle(t))
	err := mw(func(c echo.Context) error {
		t.Fatalf("claim must never be attached for a forged token")
		return nil
	})(c)

	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", appErr.Status)
	}
}
