package ports

import (
	"context"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
)

// RegisterInput carries the fields accepted on open registration. There is
// deliberately no role field: self-service accounts are always created with
// the "user" role.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// CreateUserInput is the admin-only variant that may assign any role.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// AuthService implements registration, login, and profile lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
}
