package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	apperrors "yeoman/internal/errors"
)

func TestCreateFileRejectsAmbiguousParent(t *testing.T) {
	st, _ := newTestStore(t)
	pageID := "p1"
	articleID := "a1"

	tests := []struct {
		name      string
		pageID    *string
		articleID *string
	}{
		{"no parent", nil, nil},
		{"both parents", &pageID, &articleID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := st.CreateFile(context.Background(), "cover", "png", tt.pageID, tt.articleID)
			if !apperrors.IsKind(err, apperrors.KindValidation) {
				t.Fatalf("expected VALIDATION, got %v", err)
			}
		})
	}
}

func TestCreateFileWithPageParent(t *testing.T) {
	st, mock := newTestStore(t)
	pageID := "p1"

	mock.ExpectExec("INSERT INTO files").
		WillReturnResult(sqlmock.NewResult(0, 1))

	file, err := st.CreateFile(context.Background(), "cover", "png", &pageID, nil)
	if err != nil {
		t.Fatalf("CreateFile returned error: %v", err)
	}
	if file.PageID == nil || *file.PageID != "p1" || file.ArticleID != nil {
		t.Fatalf("unexpected parent refs: %+v", file)
	}
}

func TestListFilesByDocument(t *testing.T) {
	st, mock := newTestStore(t)

	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM files\\s+WHERE page_id = \\$1 OR article_id = \\$1").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "extension", "page_id", "article_id", "created_at"}).
			AddRow("f1", "cover", "png", "p1", nil, created))

	files, err := st.ListFilesByDocument(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ListFilesByDocument returned error: %v", err)
	}
	if len(files) != 1 || files[0].PageID == nil || *files[0].PageID != "p1" {
		t.Fatalf("unexpected files: %+v", files)
	}
	if files[0].ArticleID != nil {
		t.Fatalf("article ref should be nil for page files")
	}
}
