package graph

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "yeoman/internal/errors"
	"yeoman/internal/models"
	"yeoman/internal/store"
)

// fakeStore is an in-memory Store for resolver tests.
type fakeStore struct {
	users    map[string]*models.User
	articles map[string]*models.Article
	comments map[string]*models.Comment
	pages    map[string]*models.Page
	files    map[string]*models.File
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[string]*models.User{},
		articles: map[string]*models.Article{},
		comments: map[string]*models.Comment{},
		pages:    map[string]*models.Page{},
		files:    map[string]*models.File{},
	}
}

func (f *fakeStore) CreateUser(_ context.Context, name, email, passwordHash string) (*models.User, error) {
	for _, user := range f.users {
		if user.Name == name || user.Email == email {
			return nil, apperrors.Duplicate("user")
		}
	}
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, apperrors.NotFound("user")
}

func (f *fakeStore) GetUserByName(_ context.Context, name string) (*models.User, error) {
	for _, user := range f.users {
		if user.Name == name {
			return user, nil
		}
	}
	return nil, apperrors.NotFound("user")
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.NotFound("user")
}

func (f *fakeStore) ListArticles(_ context.Context, opts store.ListArticlesOptions) ([]*models.Article, error) {
	articles := []*models.Article{}
	for _, article := range f.articles {
		if opts.PublishedOnly && article.Draft {
			continue
		}
		if opts.Filter != "" &&
			!strings.Contains(article.Title, opts.Filter) &&
			!strings.Contains(article.Summary, opts.Filter) {
			continue
		}
		articles = append(articles, article)
	}
	sort.Slice(articles, func(i, j int) bool {
		if !articles[i].CreatedAt.Equal(articles[j].CreatedAt) {
			return articles[i].CreatedAt.After(articles[j].CreatedAt)
		}
		return articles[i].ID > articles[j].ID
	})
	if opts.Skip > 0 {
		if opts.Skip >= len(articles) {
			return []*models.Article{}, nil
		}
		articles = articles[opts.Skip:]
	}
	if opts.First > 0 && opts.First < len(articles) {
		articles = articles[:opts.First]
	}
	return articles, nil
}

func (f *fakeStore) GetArticle(_ context.Context, id string) (*models.Article, error) {
	if article, ok := f.articles[id]; ok {
		return article, nil
	}
	return nil, apperrors.NotFound("article")
}

func (f *fakeStore) CreateArticle(_ context.Context, input models.ArticleInput) (*models.Article, error) {
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
	f.articles[article.ID] = article
	return article, nil
}

func (f *fakeStore) UpdateArticle(_ context.Context, id string, input models.ArticleInput) (*models.Article, error) {
	article, ok := f.articles[id]
	if !ok {
		return nil, apperrors.NotFound("article")
	}
	article.Title = input.Title
	article.Summary = input.Summary
	article.Content = input.Content
	article.Tags = input.Tags
	article.ModifiedAt = time.Now().UTC()
	return article, nil
}

func (f *fakeStore) PublishArticle(_ context.Context, id string, publish bool) (*models.Article, error) {
	article, ok := f.articles[id]
	if !ok {
		return nil, apperrors.NotFound("article")
	}
	if publish && article.Draft && article.PublishedAt == nil {
		now := time.Now().UTC()
		article.PublishedAt = &now
	}
	article.Draft = !publish
	return article, nil
}

func (f *fakeStore) DeleteArticle(_ context.Context, id string) error {
	if _, ok := f.articles[id]; !ok {
		return apperrors.NotFound("article")
	}
	delete(f.articles, id)
	for commentID, comment := range f.comments {
		if comment.ArticleID == id {
			delete(f.comments, commentID)
		}
	}
	for fileID, file := range f.files {
		if file.ArticleID != nil && *file.ArticleID == id {
			delete(f.files, fileID)
		}
	}
	return nil
}

func (f *fakeStore) GetComment(_ context.Context, id string) (*models.Comment, error) {
	if comment, ok := f.comments[id]; ok {
		return comment, nil
	}
	return nil, apperrors.NotFound("comment")
}

func (f *fakeStore) ListComments(_ context.Context, skip, first int) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	for _, comment := range f.comments {
		comments = append(comments, comment)
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID > comments[j].ID
	})
	if skip > 0 {
		if skip >= len(comments) {
			return []*models.Comment{}, nil
		}
		comments = comments[skip:]
	}
	if first > 0 && first < len(comments) {
		comments = comments[:first]
	}
	return comments, nil
}

func (f *fakeStore) ListCommentsByArticle(_ context.Context, articleID string) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	for _, comment := range f.comments {
		if comment.ArticleID == articleID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (f *fakeStore) CreateComment(_ context.Context, userID string, input models.CommentInput) (*models.Comment, error) {
	if _, ok := f.articles[input.ArticleID]; !ok {
		return nil, apperrors.NotFound("article")
	}
	now := time.Now().UTC()
	comment := &models.Comment{
		ID:         uuid.New().String(),
		Content:    input.Content,
		UserID:     userID,
		ArticleID:  input.ArticleID,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	f.comments[comment.ID] = comment
	return comment, nil
}

func (f *fakeStore) DeleteComment(_ context.Context, id string) error {
	if _, ok := f.comments[id]; !ok {
		return apperrors.NotFound("comment")
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeStore) GetPageByName(_ context.Context, name string) (*models.Page, error) {
	for _, page := range f.pages {
		if page.Name == name {
			return page, nil
		}
	}
	return nil, apperrors.NotFound("page")
}

func (f *fakeStore) ListPages(_ context.Context) ([]*models.Page, error) {
	pages := []*models.Page{}
	for _, page := range f.pages {
		pages = append(pages, page)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Name < pages[j].Name })
	return pages, nil
}

func (f *fakeStore) CreatePage(_ context.Context, name, content string) (*models.Page, error) {
	for _, page := range f.pages {
		if page.Name == name {
			return nil, apperrors.Duplicate("page")
		}
	}
	page := &models.Page{
		ID:        uuid.New().String(),
		Name:      name,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	f.pages[page.ID] = page
	return page, nil
}

func (f *fakeStore) CreateFile(_ context.Context, name, extension string, pageID, articleID *string) (*models.File, error) {
	if (pageID == nil) == (articleID == nil) {
		return nil, apperrors.Validation("file must reference exactly one of page or article")
	}
	if pageID != nil {
		if _, ok := f.pages[*pageID]; !ok {
			return nil, apperrors.NotFound("parent document")
		}
	}
	if articleID != nil {
		if _, ok := f.articles[*articleID]; !ok {
			return nil, apperrors.NotFound("parent document")
		}
	}
	file := &models.File{
		ID:        uuid.New().String(),
		Name:      name,
		Extension: extension,
		PageID:    pageID,
		ArticleID: articleID,
		CreatedAt: time.Now().UTC(),
	}
	f.files[file.ID] = file
	return file, nil
}

func (f *fakeStore) ListFilesByDocument(_ context.Context, documentID string) ([]*models.File, error) {
	files := []*models.File{}
	for _, file := range f.files {
		if (file.PageID != nil && *file.PageID == documentID) ||
			(file.ArticleID != nil && *file.ArticleID == documentID) {
			files = append(files, file)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
