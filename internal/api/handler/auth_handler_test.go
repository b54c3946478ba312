package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fittrack/training-api/internal/api"
	"github.com/fittrack/training-api/internal/api/handler"
	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
	"github.com/fittrack/training-api/internal/infrastructure/logsink"
	"github.com/fittrack/training-api/internal/pkg/i18n"
)

type authServiceStub struct {
	register func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	login    func(ctx context.Context, email, password string) (string, error)
}

func (s *authServiceStub) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.register(ctx, input)
}
func (s *authServiceStub) Login(ctx context.Context, email, password string) (string, error) {
	return s.login(ctx, email, password)
}

// newAuthServer wires the auth routes through the real validator and
// terminal error handler, so tests exercise the whole pipeline.
func newAuthServer(t *testing.T, svc ports.AuthService) *echo.Echo {
	t.Helper()
	bundle, err := i18n.NewBundle()
	if err != nil {
		t.Fatalf("NewBundle: %v", err)
	}
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop(), bundle, logsink.New(filepath.Join(t.TempDir(), "error.log")))

	h := handler.NewAuthHandler(svc, bundle)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	return e
}

func postJSON(e *echo.Echo, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegister_Created(t *testing.T) {
	svc := &authServiceStub{
		register: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Role != domain.RoleUser {
				t.Fatalf("role = %s", input.Role)
			}
			return &domain.User{ID: 10, Email: input.Email, Role: input.Role}, nil
		},
	}
	e := newAuthServer(t, svc)

	rec := postJSON(e, "/auth/register", `{
		"name": "Test", "surname": "User", "nickName": "tester",
		"email": "test@example.com", "password": "test123",
		"age": 30, "role": "USER"
	}`, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"id":10`) || !strings.Contains(body, "Registration successful") {
		t.Fatalf("body = %s", body)
	}
}

func TestRegister_ValidationFailure(t *testing.T) {
	svc := &authServiceStub{
		register: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service must not run on invalid input")
			return nil, nil
		},
	}
	e := newAuthServer(t, svc)

	rec := postJSON(e, "/auth/register", `{"email": "not-an-email"}`, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Validation failed") {
		t.Fatalf("body = %s", body)
	}
	// Every failing field is reported, not just the first.
	for _, field := range []string{`"field":"name"`, `"field":"email"`, `"field":"password"`, `"field":"role"`} {
		if !strings.Contains(body, field) {
			t.Fatalf("missing %s in %s", field, body)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := &authServiceStub{
		register: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	e := newAuthServer(t, svc)

	rec := postJSON(e, "/auth/register", `{
		"name": "Test", "surname": "User", "nickName": "tester",
		"email": "taken@example.com", "password": "test123",
		"age": 30, "role": "USER"
	}`, map[string]string{"language": "sk"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "E-mail je už zaregistrovaný") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	svc := &authServiceStub{
		login: func(ctx context.Context, email, password string) (string, error) {
			return "signed-token", nil
		},
	}
	e := newAuthServer(t, svc)

	rec := postJSON(e, "/auth/login", `{"email": "test@example.com", "password": "test123"}`, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"signed-token"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &authServiceStub{
		login: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	e := newAuthServer(t, svc)

	rec := postJSON(e, "/auth/login", `{"email": "test@example.com", "password": "wrong"}`, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Invalid email or password") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
