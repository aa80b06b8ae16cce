package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// NotificationDedup provides idempotency checks for notification recording.
// Key format: notified:<article_id>
type NotificationDedup struct {
	client *redis.Client
}

// NewNotificationDedup creates a NotificationDedup wrapping the given client.
func NewNotificationDedup(client *redis.Client) *NotificationDedup {
	return &NotificationDedup{client: client}
}

// Seen reports whether a notification for this article was already recorded.
func (d *NotificationDedup) Seen(ctx context.Context, articleID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(articleID)).Result()
	if err != nil {
		return false, fmt.Errorf("notification dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this article's notification exists (expires after dedupTTL).
func (d *NotificationDedup) Mark(ctx context.Context, articleID string) error {
	return d.client.Set(ctx, d.key(articleID), "1", dedupTTL).Err()
}

func (d *NotificationDedup) key(articleID string) string {
	return fmt.Sprintf("notified:%s", articleID)
}
