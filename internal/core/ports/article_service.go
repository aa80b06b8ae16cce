package ports

import (
	"context"

	"github.com/shrigondanews/news-api/internal/core/domain"
)

// ListArticlesInput carries public feed query parameters.
type ListArticlesInput struct {
	Category string
	Limit    int64
}

// CreateArticleInput carries the fields for a new article.
type CreateArticleInput struct {
	Title    string
	Content  string
	Excerpt  string
	Category string
	Image    string
	Tags     []string
}

// UpdateArticleInput carries a partial update; nil fields are left untouched.
type UpdateArticleInput struct {
	Title    *string
	Content  *string
	Excerpt  *string
	Category *string
	Image    *string
	Tags     *[]string
	Status   *domain.ArticleStatus
}

type ArticleService interface {
	List(ctx context.Context, in ListArticlesInput) ([]domain.Article, error)
	// Get returns a published article and increments its view counter.
	Get(ctx context.Context, id string) (*domain.Article, error)
	Create(ctx context.Context, author domain.Principal, in CreateArticleInput) (*domain.Article, error)
	Update(ctx context.Context, id string, in UpdateArticleInput) error
	Delete(ctx context.Context, id string) error
	// ListAll returns every article regardless of publish status.
	ListAll(ctx context.Context) ([]domain.Article, error)
}
