package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	apperrors "yeoman/internal/errors"
	"yeoman/internal/models"
)

const pageColumns = `id, name, content, created_at`

func scanPage(row interface {
	Scan(dest ...interface{}) error
}) (*models.Page, error) {
	var page models.Page
	err := row.Scan(&page.ID, &page.Name, &page.Content, &page.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("page")
		}
		return nil, err
	}
	return &page, nil
}

// GetPageByName fetches a page by its unique name.
func (s *Store) GetPageByName(ctx context.Context, name string) (*models.Page, error) {
	return scanPage(s.db.QueryRowContext(ctx, `
		SELECT `+pageColumns+` FROM pages WHERE name = $1`, name))
}

// ListPages returns all pages ordered by name.
func (s *Store) ListPages(ctx context.Context) ([]*models.Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+pageColumns+` FROM pages ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []*models.Page{}
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// CreatePage persists a new named page. Fails with DUPLICATE when the
// name is taken.
func (s *Store) CreatePage(ctx context.Context, name, content string) (*models.Page, error) {
	page := &models.Page{
		ID:        uuid.New().String(),
		Name:      name,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, name, content, created_at)
		VALUES ($1, $2, $3, $4)`,
		page.ID, page.Name, page.Content, page.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Duplicate("page")
		}
		return nil, err
	}
	return page, nil
}
