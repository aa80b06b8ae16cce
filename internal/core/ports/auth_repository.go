package ports

import (
	"context"

	"github.com/shrigondanews/news-api/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	// FindByLogin matches on username or email; at least one must be non-empty.
	FindByLogin(ctx context.Context, username, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
