package testutil

import (
	"time"

	"yeoman/internal/models"
)

// Fixtures provides entity fixtures for tests
type Fixtures struct{}

// NewFixtures creates a fixtures helper
func NewFixtures() *Fixtures {
	return &Fixtures{}
}

// AdminUser returns the designated admin account
func (f *Fixtures) AdminUser() *models.User {
	return &models.User{
		ID:        "user-admin",
		Name:      "admin",
		Email:     "admin@example.com",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ReaderUser returns a non-admin account
func (f *Fixtures) ReaderUser() *models.User {
	return &models.User{
		ID:        "user-reader",
		Name:      "reader",
		Email:     "reader@example.com",
		CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

// DraftArticle returns an unpublished article
func (f *Fixtures) DraftArticle() *models.Article {
	created := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	return &models.Article{
		ID:         "article-draft",
		Title:      "Draft title",
		Summary:    "Draft summary",
		Content:    "Draft content",
		Tags:       []string{"draft"},
		Draft:      true,
		CreatedAt:  created,
		ModifiedAt: created,
	}
}

// PublishedArticle returns a published article
func (f *Fixtures) PublishedArticle() *models.Article {
	created := time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC)
	published := time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC)
	return &models.Article{
		ID:          "article-published",
		Title:       "Published title",
		Summary:     "Published summary",
		Content:     "Published content",
		Tags:        []string{"released", "news"},
		Draft:       false,
		CreatedAt:   created,
		ModifiedAt:  created,
		PublishedAt: &published,
	}
}

// Comment returns a comment on the published article by the admin
func (f *Fixtures) Comment() *models.Comment {
	created := time.Date(2024, 2, 4, 10, 0, 0, 0, time.UTC)
	return &models.Comment{
		ID:         "comment-1",
		Content:    "hello",
		UserID:     "user-admin",
		ArticleID:  "article-published",
		CreatedAt:  created,
		ModifiedAt: created,
	}
}
