package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("user with this email already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidRole = errors.New("invalid role")

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the recognised roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
