package client

import (
	"time"
)

// User mirrors the API User type
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Article mirrors the API Article type
type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	Tags        []string   `json:"tags"`
	Draft       bool       `json:"draft"`
	CreatedAt   time.Time  `json:"createdAt"`
	ModifiedAt  time.Time  `json:"modifiedAt"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// ArticleRef identifies a comment's parent article
type ArticleRef struct {
	ID string `json:"id"`
}

// Comment mirrors the API Comment type
type Comment struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	User      User       `json:"user"`
	Article   ArticleRef `json:"article"`
}

// Page mirrors the API Page type
type Page struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// File mirrors the API File type
type File struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Extension string `json:"extension"`
}

// AuthPayload mirrors the signup/login result
type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ArticleInput carries the writable article fields
type ArticleInput struct {
	Title   string
	Summary string
	Content string
	Tags    []string
}
