package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "yeoman/internal/errors"
	"yeoman/internal/models"
)

const fileColumns = `id, name, extension, page_id, article_id, created_at`

// ListFilesByDocument returns the files attached to the page or
// article with the given id, ordered by name.
func (s *Store) ListFilesByDocument(ctx context.Context, documentID string) ([]*models.File, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+fileColumns+` FROM files
		WHERE page_id = $1 OR article_id = $1
		ORDER BY name ASC, id ASC`, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := []*models.File{}
	for rows.Next() {
		var file models.File
		if err := rows.Scan(&file.ID, &file.Name, &file.Extension,
			&file.PageID, &file.ArticleID, &file.CreatedAt); err != nil {
			return nil, err
		}
		files = append(files, &file)
	}
	return files, rows.Err()
}

// CreateFile records attachment metadata. A file belongs to exactly
// one of a page or an article.
func (s *Store) CreateFile(ctx context.Context, name, extension string, pageID, articleID *string) (*models.File, error) {
	if (pageID == nil) == (articleID == nil) {
		return nil, apperrors.Validation("file must reference exactly one of page or article")
	}

	file := &models.File{
		ID:        uuid.New().String(),
		Name:      name,
		Extension: extension,
		PageID:    pageID,
		ArticleID: articleID,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO files (id, name, extension, page_id, article_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		file.ID, file.Name, file.Extension, file.PageID, file.ArticleID, file.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.NotFound("parent document")
		}
		return nil, err
	}
	return file, nil
}
