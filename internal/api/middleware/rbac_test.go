package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/training-api/internal/core/domain"
)

func newRBACContext(e *echo.Echo, role any) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(ContextRole, role)
	}
	return c
}

func TestRequireRole_AllowsEqualAndHigherRank(t *testing.T) {
	e := echo.New()
	bundle := testBundle(t)

	tests := []struct {
		caller domain.Role
		min    domain.Role
	}{
		{domain.RoleUser, domain.RoleUser},
		{domain.RoleAdmin, domain.RoleUser},
		{domain.RoleAdmin, domain.RoleAdmin},
	}
	for _, tt := range tests {
		c := newRBACContext(e, tt.caller)

		called := false
		mw := RequireRole(tt.min, bundle)
		err := mw(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})(c)

		if err != nil {
			t.Fatalf("%s with min %s: unexpected error %v", tt.caller, tt.min, err)
		}
		if !called {
			t.Fatalf("%s with min %s: next not called", tt.caller, tt.min)
		}
	}
}

func TestRequireRole_DeniesLowerRank(t *testing.T) {
	e := echo.New()
	c := newRBACContext(e, domain.RoleUser)

	mw := RequireRole(domain.RoleAdmin, testBundle(t))
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", appErr.Status)
	}
	if appErr.Message != "Access denied: ADMIN role required" {
		t.Fatalf("message = %q", appErr.Message)
	}
}

func TestRequireRole_DeniesMissingClaim(t *testing.T) {
	e := echo.New()
	c := newRBACContext(e, nil)

	mw := RequireRole(domain.RoleUser, testBundle(t))
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
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

func TestRequireRole_DeniesUnknownRole(t *testing.T) {
	e := echo.New()
	c := newRBACContext(e, domain.Role("GUEST"))

	mw := RequireRole(domain.RoleUser, testBundle(t))
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
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
