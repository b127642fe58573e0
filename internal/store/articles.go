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

const articleColumns = `id, title, summary, content, tags, draft, created_at, modified_at, published_at`

// ListArticlesOptions controls article list queries.
type ListArticlesOptions struct {
	// PublishedOnly excludes drafts.
	PublishedOnly bool
	// Filter is a case-sensitive substring matched against title OR
	// summary. Empty means no filtering.
	Filter string
	Skip   int
	First  int
}

func scanArticle(row interface {
	Scan(dest ...interface{}) error
}) (*models.Article, error) {
	var article models.Article
	err := row.Scan(
		&article.ID, &article.Title, &article.Summary, &article.Content,
		pq.Array(&article.Tags), &article.Draft,
		&article.CreatedAt, &article.ModifiedAt, &article.PublishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("article")
		}
		return nil, err
	}
	return &article, nil
}

// ListArticles returns articles ordered by created_at DESC, id DESC
// (stable; insertion-recency order with id as tiebreaker).
func (s *Store) ListArticles(ctx context.Context, opts ListArticlesOptions) ([]*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	args := []interface{}{}
	where := ""

	if opts.PublishedOnly {
		where = " WHERE draft = false"
	}
	if opts.Filter != "" {
		if where == "" {
			where = " WHERE"
		} else {
			where += " AND"
		}
		// strpos is case sensitive, matching the observed filter
		// semantics (substring containment, not ILIKE).
		where += " (strpos(title, $1) > 0 OR strpos(summary, $1) > 0)"
		args = append(args, opts.Filter)
	}

	query += where + " ORDER BY created_at DESC, id DESC" + window(opts.Skip, opts.First)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []*models.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// GetArticle fetches one article by id.
func (s *Store) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	return scanArticle(s.db.QueryRowContext(ctx, `
		SELECT `+articleColumns+` FROM articles WHERE id = $1`, id))
}

// CreateArticle persists a new draft article. Tags replace any prior
// value wholesale.
func (s *Store) CreateArticle(ctx context.Context, input models.ArticleInput) (*models.Article, error) {
	now := time.Now().UTC()
	article := &models.Article{
		ID:         uuid.New().String(),
		Title:      input.Title,
		Summary:    input.Summary,
		Content:    input.Content,
		Tags:       input.Tags,
		Draft:      true,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, title, summary, content, tags, draft, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, true, $6, $7)`,
		article.ID, article.Title, article.Summary, article.Content,
		pq.Array(article.Tags), article.CreatedAt, article.ModifiedAt)
	if err != nil {
		return nil, err
	}
	return article, nil
}

// UpdateArticle overwrites the writable fields and stamps modified_at.
func (s *Store) UpdateArticle(ctx context.Context, id string, input models.ArticleInput) (*models.Article, error) {
	return scanArticle(s.db.QueryRowContext(ctx, `
		UPDATE articles
		SET title = $2, summary = $3, content = $4, tags = $5, modified_at = $6
		WHERE id = $1
		RETURNING `+articleColumns,
		id, input.Title, input.Summary, input.Content,
		pq.Array(input.Tags), time.Now().UTC()))
}

// PublishArticle toggles the draft flag. published_at is stamped on
// the draft-to-published transition and kept otherwise.
func (s *Store) PublishArticle(ctx context.Context, id string, publish bool) (*models.Article, error) {
	return scanArticle(s.db.QueryRowContext(ctx, `
		UPDATE articles
		SET draft = NOT $2,
		    published_at = CASE WHEN $2 AND draft THEN $3 ELSE published_at END
		WHERE id = $1
		RETURNING `+articleColumns,
		id, publish, time.Now().UTC()))
}

// DeleteArticle removes an article and cascade-deletes its comments
// and files in one transaction.
func (s *Store) DeleteArticle(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE article_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM files WHERE article_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("article")
	}

	return tx.Commit()
}
