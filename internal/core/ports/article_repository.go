package ports

import (
	"context"

	"github.com/shrigondanews/news-api/internal/core/domain"
)

// ArticleRepository defines the interface for article persistence.
type ArticleRepository interface {
	Insert(ctx context.Context, article *domain.Article) error
	// FindPublished lists published articles newest-first, optionally
	// filtered by category, capped at limit.
	FindPublished(ctx context.Context, category string, limit int64) ([]domain.Article, error)
	FindPublishedByID(ctx context.Context, id string) (*domain.Article, error)
	// IncrementViews bumps the view counter by one, relying on per-document
	// atomicity of the underlying store.
	IncrementViews(ctx context.Context, id string) error
	// Update applies a partial $set-style update. Returns
	// domain.ErrArticleNotFound when no document matched.
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	// FindAll lists every article regardless of publish status, newest-first.
	FindAll(ctx context.Context) ([]domain.Article, error)
}
