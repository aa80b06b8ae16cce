package ports

import (
	"context"

	"github.com/shrigondanews/news-api/internal/core/domain"
)

// CreateUserInput carries the fields for an admin-issued user creation.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

type AuthService interface {
	// Login authenticates by username or email and returns a signed token
	// together with the matched user.
	Login(ctx context.Context, username, email, password string) (string, *domain.User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	// EnsureAdmin seeds the default admin account when absent. Idempotent.
	EnsureAdmin(ctx context.Context) error
}
