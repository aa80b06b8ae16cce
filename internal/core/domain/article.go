package domain

import (
	"errors"
	"time"
)

// ArticleStatus marks whether an article is visible on the public site.
type ArticleStatus string

const (
	StatusPublished ArticleStatus = "published"
	StatusDraft     ArticleStatus = "draft"
)

var ErrArticleNotFound = errors.New("article not found")

// Article is the primary content entity.
type Article struct {
	ID        string        `json:"id" bson:"id"`
	Title     string        `json:"title" bson:"title"`
	Content   string        `json:"content" bson:"content"`
	Excerpt   string        `json:"excerpt" bson:"excerpt"`
	Category  string        `json:"category" bson:"category"`
	Image     string        `json:"image" bson:"image"`
	Tags      []string      `json:"tags" bson:"tags"`
	Author    string        `json:"author" bson:"author"`
	AuthorID  string        `json:"author_id" bson:"author_id"`
	Status    ArticleStatus `json:"status" bson:"status"`
	Views     int64         `json:"views" bson:"views"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}

// Category is one entry of the fixed section catalogue.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Categories returns the static section catalogue shown on the public site.
func Categories() []Category {
	return []Category{
		{ID: "local", Name: "Local News", Icon: "🏘️"},
		{ID: "regional", Name: "Regional", Icon: "🌆"},
		{ID: "national", Name: "National", Icon: "🇮🇳"},
		{ID: "sports", Name: "Sports", Icon: "⚽"},
		{ID: "entertainment", Name: "Entertainment", Icon: "🎬"},
		{ID: "business", Name: "Business", Icon: "💼"},
	}
}

// ValidCategory reports whether id names a catalogue entry.
func ValidCategory(id string) bool {
	for _, c := range Categories() {
		if c.ID == id {
			return true
		}
	}
	return false
}
