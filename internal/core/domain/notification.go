package domain

import "time"

// Notification is a best-effort announcement recorded when an article is
// published. Its creation never gates the article write.
type Notification struct {
	ID        string    `json:"id" bson:"id"`
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message" bson:"message"`
	ArticleID string    `json:"article_id" bson:"article_id"`
	Read      bool      `json:"read" bson:"read"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
