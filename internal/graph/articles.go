package graph

import (
	"github.com/graphql-go/graphql"

	"yeoman/internal/logging"
	"yeoman/internal/models"
	"yeoman/internal/store"
)

func (r *Resolver) resolvePublishedArticles(p graphql.ResolveParams) (interface{}, error) {
	opts, err := r.listOptions(p)
	if err != nil {
		return nil, err
	}
	return r.store.ListArticles(p.Context, store.ListArticlesOptions{
		PublishedOnly: true,
		Filter:        opts.Filter,
		Skip:          opts.Skip,
		First:         opts.First,
	})
}

// resolveAllArticles returns drafts too. The observed surface leaves
// this list unauthenticated; only single-article draft reads are
// admin-gated.
func (r *Resolver) resolveAllArticles(p graphql.ResolveParams) (interface{}, error) {
	opts, err := r.listOptions(p)
	if err != nil {
		return nil, err
	}
	return r.store.ListArticles(p.Context, store.ListArticlesOptions{
		Skip:  opts.Skip,
		First: opts.First,
	})
}

func (r *Resolver) resolveArticle(p graphql.ResolveParams) (interface{}, error) {
	article, err := r.store.GetArticle(p.Context, stringArg(p, "id"))
	if err != nil {
		return nil, err
	}
	if article.Draft {
		if _, err := r.guard.RequireAdmin(p.Context); err != nil {
			return nil, err
		}
	}
	return article, nil
}

func (r *Resolver) resolvePostArticle(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.guard.RequireAdmin(p.Context); err != nil {
		return nil, err
	}

	input := models.ArticleInput{
		Title:   stringArg(p, "title"),
		Summary: stringArg(p, "summary"),
		Content: stringArg(p, "content"),
		Tags:    stringListArg(p, "tags"),
	}
	if err := r.validateInput(input); err != nil {
		return nil, err
	}

	article, err := r.store.CreateArticle(p.Context, input)
	if err != nil {
		return nil, err
	}
	r.logger.WithField("article_id", article.ID).Info("Article created")
	return article, nil
}

func (r *Resolver) resolveUpdateArticle(p graphql.ResolveParams) (interface{}, error) {
	// Gated like every other content mutation; the guard is applied
	// here rather than relying on callers to remember it.
	if _, err := r.guard.RequireAdmin(p.Context); err != nil {
		return nil, err
	}

	input := models.ArticleInput{
		Title:   stringArg(p, "title"),
		Summary: stringArg(p, "summary"),
		Content: stringArg(p, "content"),
		Tags:    stringListArg(p, "tags"),
	}
	if err := r.validateInput(input); err != nil {
		return nil, err
	}

	article, err := r.store.UpdateArticle(p.Context, stringArg(p, "id"), input)
	if err != nil {
		return nil, err
	}
	r.logger.WithField("article_id", article.ID).Info("Article updated")
	return article, nil
}

func (r *Resolver) resolvePublishArticle(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.guard.RequireAdmin(p.Context); err != nil {
		return nil, err
	}

	publish := boolArg(p, "publish")
	article, err := r.store.PublishArticle(p.Context, stringArg(p, "id"), publish)
	if err != nil {
		return nil, err
	}
	r.logger.WithFields(logging.Fields{
		"article_id": article.ID,
		"draft":      article.Draft,
	}).Info("Article publish state changed")
	return article, nil
}

func (r *Resolver) resolveDeleteArticle(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.guard.RequireAdmin(p.Context); err != nil {
		return nil, err
	}

	id := stringArg(p, "id")
	article, err := r.store.GetArticle(p.Context, id)
	if err != nil {
		return nil, err
	}
	// Cascade: dependent comments and files go with the article.
	if err := r.store.DeleteArticle(p.Context, id); err != nil {
		return nil, err
	}
	r.logger.WithField("article_id", id).Info("Article deleted")
	return article, nil
}
