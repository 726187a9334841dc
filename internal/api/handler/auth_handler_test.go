package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn   func(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error)
	loginFn      func(ctx context.Context, email, password string) (string, *domain.User, error)
	getProfileFn func(ctx context.Context, userID string) (*domain.User, error)
	createUserFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.getProfileFn(ctx, userID)
}

func (s *stubAuthService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createUserFn(ctx, input)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func TestAuthHandler_Register(t *testing.T) {
	var captured ports.RegisterInput
	svc := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (string, *domain.User, error) {
			captured = input
			return "token-abc", &domain.User{ID: "u1", Email: input.Email, Name: input.Name, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"kate@example.com","password":"secret1","name":"Kate"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.Email != "kate@example.com" || captured.Name != "Kate" {
		t.Fatalf("unexpected input: %+v", captured)
	}

	var resp struct {
		Message string       `json:"message"`
		Token   string       `json:"token"`
		User    *domain.User `json:"user"`
	}
	decodeBody(t, rec, &resp)
	if resp.Message != "User registered successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Token != "token-abc" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
	if resp.User == nil || resp.User.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

// The register payload has no role field: anything the client sends alongside
// the known fields is dropped by binding, never forwarded to the service.
func TestAuthHandler_RegisterIgnoresRoleField(t *testing.T) {
	var captured ports.RegisterInput
	svc := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (string, *domain.User, error) {
			captured = input
			return "t", &domain.User{ID: "u1", Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"kate@example.com","password":"secret1","name":"Kate","role":"admin"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if captured.Email != "kate@example.com" {
		t.Fatalf("service not called with expected input: %+v", captured)
	}
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (string, *domain.User, error) {
			t.Fatalf("service should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(svc)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"secret1","name":"Kate"}`},
		{"bad email", `{"email":"not-an-email","password":"secret1","name":"Kate"}`},
		{"missing password", `{"email":"kate@example.com","name":"Kate"}`},
		{"malformed json", `{"email":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", tt.body)
			err := h.Register(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", he.Code)
			}
		})
	}
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (string, *domain.User, error) {
			return "", nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"kate@example.com","password":"secret1","name":"Kate"}`)

	err := h.Register(c)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken passed through, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "kate@example.com" || password != "secret1" {
				return "", nil, domain.ErrInvalidCredentials
			}
			return "token-abc", &domain.User{ID: "u1", Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"kate@example.com","password":"secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	decodeBody(t, rec, &resp)
	if resp.Message != "Login successful" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Token != "token-abc" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"kate@example.com","password":"wrong"}`)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials passed through, got %v", err)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	svc := &stubAuthService{
		getProfileFn: func(_ context.Context, userID string) (*domain.User, error) {
			if userID != "u1" {
				return nil, domain.ErrUserNotFound
			}
			return &domain.User{ID: "u1", Email: "kate@example.com", Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/auth/profile", "")
	c.Set("user_id", "u1")
	c.Set("role", domain.RoleUser)

	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		User *domain.User `json:"user"`
	}
	decodeBody(t, rec, &resp)
	if resp.User == nil || resp.User.Email != "kate@example.com" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password material leaked into response: %s", rec.Body.String())
	}
}

func TestAuthHandler_ProfileNoIdentity(t *testing.T) {
	svc := &stubAuthService{
		getProfileFn: func(context.Context, string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodGet, "/api/auth/profile", "")

	err := h.Profile(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

func TestAuthHandler_CreateUser(t *testing.T) {
	var captured ports.CreateUserInput
	svc := &stubAuthService{
		createUserFn: func(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
			captured = input
			return &domain.User{ID: "u2", Email: input.Email, Name: input.Name, Role: input.Role}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/users",
		`{"email":"ops@example.com","password":"secret1","name":"Ops","role":"admin"}`)

	if err := h.CreateUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.Role != domain.RoleAdmin {
		t.Fatalf("role not forwarded: %+v", captured)
	}
}

func TestAuthHandler_CreateUserBadRole(t *testing.T) {
	svc := &stubAuthService{
		createUserFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/users",
		`{"email":"ops@example.com","password":"secret1","name":"Ops","role":"superuser"}`)

	err := h.CreateUser(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}
