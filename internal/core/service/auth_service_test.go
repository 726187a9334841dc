package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

type stubUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.byID[created.ID] = cloneUser(created)
	r.byEmail[created.Email] = r.byID[created.ID]
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func newAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "Alice@Example.com",
		Password: "pass123",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "bob@example.com",
		Password: "12345",
		Name:     "Bob",
	}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	input := ports.RegisterInput{Email: "bob@example.com", Password: "secret1", Name: "Bob"}
	if _, _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_CreateUser_AdminRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Email:    "root@example.com",
		Password: "s3cret1",
		Name:     "Root",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}
}

func TestAuthService_CreateUser_InvalidRole(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Email:    "x@example.com",
		Password: "s3cret1",
		Name:     "X",
		Role:     "superuser",
	}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Email:    "carol@example.com",
		Password: "s3cret1",
		Name:     "Carol",
		Role:     domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "Carol@Example.com", "s3cret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["user_id"] != user.ID {
		t.Fatalf("expected user_id %s, got %v", user.ID, claims["user_id"])
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_GenericFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "dave@example.com",
		Password: "goodpass",
		Name:     "Dave",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, unknownEmail := svc.Login(context.Background(), "ghost@example.com", "goodpass")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownEmail)
	}
	if wrongPass.Error() != unknownEmail.Error() {
		t.Fatalf("expected identical messages, got %q vs %q", wrongPass.Error(), unknownEmail.Error())
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "erin@example.com",
		Password: "hunter22",
		Name:     "Erin",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "erin@example.com", "hunter22"); err != nil {
		t.Fatalf("login after register failed: %v", err)
	}
}

func TestAuthService_GetProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "frank@example.com",
		Password: "secret1",
		Name:     "Frank",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	got, err := svc.GetProfile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.Email != "frank@example.com" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if _, err := svc.GetProfile(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
