// Package metrics defines and registers all custom Prometheus metrics for
// the news API. It is the single source of truth for metric names, labels,
// and help strings. Metrics are registered with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "news"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ArticlesCreatedTotal counts newly created articles.
// Label:
//   - category: the article's category id (e.g. "sports")
var ArticlesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_created_total",
		Help:      "Total number of articles created, by category.",
	},
	[]string{"category"},
)

// ArticleViewsTotal counts successful view-counter increments on public
// article fetches.
var ArticleViewsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "article_views_total",
		Help:      "Total number of article view counter increments.",
	},
)

// NotificationsRecordedTotal counts notification recording outcomes.
// Label:
//   - result: "recorded", "duplicate", or "error"
var NotificationsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_recorded_total",
		Help:      "Total number of notification recording attempts, by result.",
	},
	[]string{"result"},
)
