package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shrigondanews/news-api/internal/api/metrics"
	"github.com/shrigondanews/news-api/internal/core/domain"
	"github.com/shrigondanews/news-api/internal/core/ports"
)

const (
	defaultFeedLimit = 50
	excerptLength    = 200
)

type ArticleService struct {
	repo     ports.ArticleRepository
	notifier ports.NotificationService
	logger   zerolog.Logger
}

func NewArticleService(repo ports.ArticleRepository, notifier ports.NotificationService, logger zerolog.Logger) *ArticleService {
	return &ArticleService{repo: repo, notifier: notifier, logger: logger}
}

// List returns the public feed: published articles, newest-first.
func (s *ArticleService) List(ctx context.Context, in ports.ListArticlesInput) ([]domain.Article, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	return s.repo.FindPublished(ctx, in.Category, limit)
}

// Get returns a published article and bumps its view counter. The counter
// increment is applied after the read, so callers observe the pre-increment
// count; a failed increment is logged but does not fail the read.
func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.repo.FindPublishedByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViews(ctx, article.ID); err != nil {
		s.logger.Warn().Err(err).Str("article_id", article.ID).Msg("view counter increment failed")
	} else {
		metrics.ArticleViewsTotal.Inc()
	}

	return article, nil
}

// Create persists a new published article and records a best-effort
// notification. Notification failure never propagates.
func (s *ArticleService) Create(ctx context.Context, author domain.Principal, in ports.CreateArticleInput) (*domain.Article, error) {
	if in.Title == "" || in.Content == "" {
		return nil, domain.ErrInvalidInput
	}

	excerpt := in.Excerpt
	if excerpt == "" {
		excerpt = truncate(in.Content, excerptLength)
	}

	now := time.Now().UTC()
	article := &domain.Article{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		Excerpt:   excerpt,
		Category:  in.Category,
		Image:     in.Image,
		Tags:      in.Tags,
		Author:    author.Username,
		AuthorID:  author.ID,
		Status:    domain.StatusPublished,
		Views:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}

	if err := s.repo.Insert(ctx, article); err != nil {
		s.logger.Error().Err(err).Msg("failed to create article")
		return nil, err
	}

	metrics.ArticlesCreatedTotal.WithLabelValues(article.Category).Inc()
	s.logger.Info().Str("article_id", article.ID).Str("author", article.Author).Msg("article created")

	s.notifier.Record(ctx, article)

	return article, nil
}

// Update applies a partial update; only provided fields are written.
func (s *ArticleService) Update(ctx context.Context, id string, in ports.UpdateArticleInput) error {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Content != nil {
		fields["content"] = *in.Content
	}
	if in.Excerpt != nil {
		fields["excerpt"] = *in.Excerpt
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Image != nil {
		fields["image"] = *in.Image
	}
	if in.Tags != nil {
		fields["tags"] = *in.Tags
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return err
	}

	s.logger.Info().Str("article_id", id).Msg("article updated")
	return nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("article_id", id).Msg("article deleted")
	return nil
}

// ListAll returns every article regardless of publish status, for the admin
// dashboard.
func (s *ArticleService) ListAll(ctx context.Context) ([]domain.Article, error) {
	return s.repo.FindAll(ctx)
}

// truncate cuts s at n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}
