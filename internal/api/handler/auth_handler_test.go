package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
	"github.com/kanthalloor/governance-portal/internal/core/ports"
)

type stubAuthService struct {
	registerFn      func(ctx context.Context, input ports.RegisterInput) (*domain.Account, error)
	loginFn         func(ctx context.Context, email, password string) (string, *domain.Account, error)
	meFn            func(ctx context.Context, email string) (*domain.Account, error)
	updateProfileFn func(ctx context.Context, email string, updates map[string]interface{}) (*domain.Account, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Me(ctx context.Context, email string) (*domain.Account, error) {
	return s.meFn(ctx, email)
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, email string, updates map[string]interface{}) (*domain.Account, error) {
	return s.updateProfileFn(ctx, email, updates)
}

func newTestContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
			if input.Email != "alice@example.com" || input.FullName != "Alice" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Account{ID: "acc-1", Email: input.Email, FullName: input.FullName, Role: domain.RoleCitizen}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(e, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"secret","full_name":"Alice"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "alice@example.com" || resp["role"] != domain.RoleCitizen {
		t.Fatalf("unexpected account payload: %+v", resp)
	}
	if _, leaked := resp["hashed_password"]; leaked {
		t.Fatalf("password hash leaked into the response")
	}
}

func TestAuthHandler_Register_DuplicateBubblesUp(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(e, http.MethodPost, "/auth/register",
		`{"email":"bob@example.com","password":"pass","full_name":"Bob"}`)

	// Domain errors pass through untouched; the central error handler maps
	// them to status codes.
	if err := handler.Register(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(e, http.MethodPost, "/auth/register", "not-json")

	err := handler.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(e, http.MethodPost, "/auth/register",
		`{"email":"not-an-email","password":"pass","full_name":"Bob"}`)

	err := handler.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError for bad email, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.Account, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.Account{Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(e, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"secret"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" || resp["token_type"] != "bearer" || resp["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected token payload: %+v", resp)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.Account, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(e, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	if err := handler.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me_RequiresIdentity(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		meFn: func(ctx context.Context, email string) (*domain.Account, error) {
			t.Fatalf("should not be called without identity")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(e, http.MethodGet, "/auth/me", "")

	err := handler.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Me_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		meFn: func(ctx context.Context, email string) (*domain.Account, error) {
			if email != "alice@example.com" {
				t.Fatalf("unexpected email %s", email)
			}
			return &domain.Account{Email: email, FullName: "Alice"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(e, http.MethodGet, "/auth/me", "")
	c.Set("email", "alice@example.com")
	c.Set("role", domain.RoleCitizen)

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_UpdateProfile_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		updateProfileFn: func(ctx context.Context, email string, updates map[string]interface{}) (*domain.Account, error) {
			if email != "alice@example.com" {
				t.Fatalf("unexpected email %s", email)
			}
			if updates["ward"] != "7" {
				t.Fatalf("unexpected updates: %+v", updates)
			}
			return &domain.Account{Email: email, Ward: "7"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(e, http.MethodPatch, "/auth/profile", `{"ward":"7"}`)
	c.Set("email", "alice@example.com")
	c.Set("role", domain.RoleCitizen)

	if err := handler.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
