package ports

import (
	"context"

	"github.com/shrigondanews/news-api/internal/core/domain"
)

// NotificationRepository defines the interface for notification persistence.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	// Latest lists notifications newest-first, capped at limit.
	Latest(ctx context.Context, limit int64) ([]domain.Notification, error)
}
