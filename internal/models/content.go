package models

import (
	"time"
)

// User represents an account able to author content
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hashes
	CreatedAt    time.Time `json:"created_at"`
}

// Article represents a piece of content, draft until published
type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	Tags        []string   `json:"tags"`
	Draft       bool       `json:"draft"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  time.Time  `json:"modified_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// Comment represents a reader or admin comment on an article
type Comment struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	UserID     string    `json:"user_id"`
	ArticleID  string    `json:"article_id"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Page represents a named static content container
type Page struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// File represents attachment metadata owned by exactly one of a page
// or an article.
type File struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Extension string    `json:"extension"`
	PageID    *string   `json:"page_id,omitempty"`
	ArticleID *string   `json:"article_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthPayload is returned by signup and login
type AuthPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// SignupInput represents the signup mutation arguments
type SignupInput struct {
	Name     string `json:"name" validate:"required,min=1,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput represents the login mutation arguments
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ArticleInput carries the writable article fields
type ArticleInput struct {
	Title   string   `json:"title" validate:"required,min=1,max=256"`
	Summary string   `json:"summary" validate:"max=1024"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags" validate:"max=32,dive,min=1,max=64"`
}

// PageInput carries the writable page fields
type PageInput struct {
	Name    string `json:"name" validate:"required,min=1,max=128"`
	Content string `json:"content" validate:"required"`
}

// CommentInput carries the writable comment fields
type CommentInput struct {
	Content   string `json:"content" validate:"required,min=1,max=4096"`
	ArticleID string `json:"article_id" validate:"required"`
}

// ListOptions represents offset pagination with an optional
// case-sensitive substring filter over title and summary.
type ListOptions struct {
	Filter string `json:"filter" validate:"max=256"`
	Skip   int    `json:"skip" validate:"min=0"`
	First  int    `json:"first" validate:"min=0,max=100"`
}
