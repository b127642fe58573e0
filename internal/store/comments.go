package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	apperrors "yeoman/internal/errors"
	"yeoman/internal/models"
)

const commentColumns = `id, content, user_id, article_id, created_at, modified_at`

const pqForeignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}

func scanComment(row interface {
	Scan(dest ...interface{}) error
}) (*models.Comment, error) {
	var comment models.Comment
	err := row.Scan(
		&comment.ID, &comment.Content, &comment.UserID, &comment.ArticleID,
		&comment.CreatedAt, &comment.ModifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("comment")
		}
		return nil, err
	}
	return &comment, nil
}

// GetComment fetches one comment by id.
func (s *Store) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	return scanComment(s.db.QueryRowContext(ctx, `
		SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
}

// ListComments returns comments ordered by created_at DESC, id DESC.
func (s *Store) ListComments(ctx context.Context, skip, first int) ([]*models.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+commentColumns+` FROM comments
		ORDER BY created_at DESC, id DESC`+window(skip, first))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// ListCommentsByArticle returns the comments on one article, oldest
// first (reading order).
func (s *Store) ListCommentsByArticle(ctx context.Context, articleID string) ([]*models.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+commentColumns+` FROM comments
		WHERE article_id = $1
		ORDER BY created_at ASC, id ASC`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// CreateComment persists a comment linked to its author and article.
// Fails with NOT_FOUND when the article does not exist.
func (s *Store) CreateComment(ctx context.Context, userID string, input models.CommentInput) (*models.Comment, error) {
	now := time.Now().UTC()
	comment := &models.Comment{
		ID:         uuid.New().String(),
		Content:    input.Content,
		UserID:     userID,
		ArticleID:  input.ArticleID,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (id, content, user_id, article_id, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		comment.ID, comment.Content, comment.UserID, comment.ArticleID,
		comment.CreatedAt, comment.ModifiedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.NotFound("article")
		}
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment by id.
func (s *Store) DeleteComment(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("comment")
	}
	return nil
}
