package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shrigondanews/news-api/internal/api/metrics"
	"github.com/shrigondanews/news-api/internal/core/domain"
	"github.com/shrigondanews/news-api/internal/core/ports"
)

const latestNotifications = 20

// DedupChecker abstracts the idempotency store (Redis) guarding against a
// second notification for the same article.
type DedupChecker interface {
	Seen(ctx context.Context, articleID string) (bool, error)
	Mark(ctx context.Context, articleID string) error
}

type notificationService struct {
	repo  ports.NotificationRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(repo ports.NotificationRepository, dedup DedupChecker, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, dedup: dedup, log: log}
}

// Record announces a published article. Every failure path logs and returns:
// the article write this accompanies must never be affected.
func (s *notificationService) Record(ctx context.Context, article *domain.Article) {
	seen, err := s.dedup.Seen(ctx, article.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("article_id", article.ID).Msg("notification dedup check failed, recording anyway")
	} else if seen {
		metrics.NotificationsRecordedTotal.WithLabelValues("duplicate").Inc()
		s.log.Debug().Str("article_id", article.ID).Msg("notification already recorded, skipped")
		return
	}

	n := &domain.Notification{
		ID:        uuid.NewString(),
		Title:     "New Article Published",
		Message:   fmt.Sprintf("New article %q has been published in %s.", article.Title, article.Category),
		ArticleID: article.ID,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		metrics.NotificationsRecordedTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Str("article_id", article.ID).Msg("failed to record notification")
		return
	}

	if err := s.dedup.Mark(ctx, article.ID); err != nil {
		s.log.Warn().Err(err).Str("article_id", article.ID).Msg("notification dedup mark failed")
	}

	metrics.NotificationsRecordedTotal.WithLabelValues("recorded").Inc()
}

func (s *notificationService) Latest(ctx context.Context) ([]domain.Notification, error) {
	return s.repo.Latest(ctx, latestNotifications)
}
