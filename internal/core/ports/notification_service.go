package ports

import (
	"context"

	"github.com/shrigondanews/news-api/internal/core/domain"
)

type NotificationService interface {
	// Record announces a newly published article. Best-effort: failures are
	// logged and never surface to the caller.
	Record(ctx context.Context, article *domain.Article)
	Latest(ctx context.Context) ([]domain.Notification, error)
}
