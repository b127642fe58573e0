// Package graph wires the CMS operations into a GraphQL schema.
// Resolvers are thin: they validate input, apply the authorization
// guard, and delegate to the store.
package graph

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/graphql-go/graphql"

	"yeoman/internal/auth"
	apperrors "yeoman/internal/errors"
	"yeoman/internal/logging"
	"yeoman/internal/metrics"
	"yeoman/internal/models"
	"yeoman/internal/store"
)

// Store is the persistence surface the resolvers need. Implemented by
// *store.Store; tests substitute a fake.
type Store interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByName(ctx context.Context, name string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	ListArticles(ctx context.Context, opts store.ListArticlesOptions) ([]*models.Article, error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	CreateArticle(ctx context.Context, input models.ArticleInput) (*models.Article, error)
	UpdateArticle(ctx context.Context, id string, input models.ArticleInput) (*models.Article, error)
	PublishArticle(ctx context.Context, id string, publish bool) (*models.Article, error)
	DeleteArticle(ctx context.Context, id string) error

	GetComment(ctx context.Context, id string) (*models.Comment, error)
	ListComments(ctx context.Context, skip, first int) ([]*models.Comment, error)
	ListCommentsByArticle(ctx context.Context, articleID string) ([]*models.Comment, error)
	CreateComment(ctx context.Context, userID string, input models.CommentInput) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) error

	GetPageByName(ctx context.Context, name string) (*models.Page, error)
	ListPages(ctx context.Context) ([]*models.Page, error)
	CreatePage(ctx context.Context, name, content string) (*models.Page, error)

	ListFilesByDocument(ctx context.Context, documentID string) ([]*models.File, error)
	CreateFile(ctx context.Context, name, extension string, pageID, articleID *string) (*models.File, error)
}

// Resolver holds the collaborators shared by all resolvers.
type Resolver struct {
	store    Store
	guard    *auth.Guard
	secret   []byte
	logger   logging.Logger
	metrics  *metrics.GraphQLMetrics
	validate *validator.Validate
}

// NewResolver creates the resolver root.
func NewResolver(st Store, guard *auth.Guard, secret []byte, logger logging.Logger, m *metrics.GraphQLMetrics) *Resolver {
	return &Resolver{
		store:    st,
		guard:    guard,
		secret:   secret,
		logger:   logger,
		metrics:  m,
		validate: validator.New(),
	}
}

// instrument wraps a root resolver with metrics, failure logging and
// error sanitization. Only classified errors reach API callers.
func (r *Resolver) instrument(operation string, fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		start := time.Now()
		result, err := fn(p)

		status := "success"
		if err != nil {
			status = "error"
			sanitized := apperrors.Sanitize(err)
			entry := r.logger.WithField("operation", operation).WithError(err)
			if sanitized.Kind == apperrors.KindInternal {
				entry.Error("GraphQL operation failed")
			} else {
				entry.WithField("code", string(sanitized.Kind)).Warn("GraphQL operation rejected")
			}
			err = sanitized
			result = nil
		}
		r.metrics.Observe(operation, status, time.Since(start).Seconds())
		return result, err
	}
}

// nested wraps a type-field resolver so its failures are classified
// the same way root fields are: internal causes stay in the logs, not
// the response.
func (r *Resolver) nested(field string, fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		result, err := fn(p)
		if err != nil {
			sanitized := apperrors.Sanitize(err)
			if sanitized.Kind == apperrors.KindInternal {
				r.logger.WithField("field", field).WithError(err).Error("Field resolution failed")
			}
			return nil, sanitized
		}
		return result, nil
	}
}

// validateInput maps validator failures onto the VALIDATION kind.
func (r *Resolver) validateInput(input interface{}) error {
	if err := r.validate.Struct(input); err != nil {
		return apperrors.Validation(err.Error())
	}
	return nil
}

func stringArg(p graphql.ResolveParams, name string) string {
	if value, ok := p.Args[name].(string); ok {
		return value
	}
	return ""
}

func intArg(p graphql.ResolveParams, name string, fallback int) int {
	if value, ok := p.Args[name].(int); ok {
		return value
	}
	return fallback
}

func boolArg(p graphql.ResolveParams, name string) bool {
	value, _ := p.Args[name].(bool)
	return value
}

func stringPtrArg(p graphql.ResolveParams, name string) *string {
	if value, ok := p.Args[name].(string); ok && value != "" {
		return &value
	}
	return nil
}

func stringListArg(p graphql.ResolveParams, name string) []string {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return []string{}
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

// listOptions validates shared pagination arguments.
func (r *Resolver) listOptions(p graphql.ResolveParams) (models.ListOptions, error) {
	opts := models.ListOptions{
		Filter: stringArg(p, "filter"),
		Skip:   intArg(p, "skip", 0),
		First:  intArg(p, "first", 0),
	}
	if err := r.validateInput(opts); err != nil {
		return models.ListOptions{}, err
	}
	return opts, nil
}
