package graph

import (
	"github.com/graphql-go/graphql"

	"yeoman/internal/logging"
	"yeoman/internal/models"
)

func (r *Resolver) resolveComments(p graphql.ResolveParams) (interface{}, error) {
	opts, err := r.listOptions(p)
	if err != nil {
		return nil, err
	}
	return r.store.ListComments(p.Context, opts.Skip, opts.First)
}

func (r *Resolver) resolvePostComment(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.guard.RequireAdmin(p.Context)
	if err != nil {
		return nil, err
	}

	input := models.CommentInput{
		Content:   stringArg(p, "content"),
		ArticleID: stringArg(p, "articleId"),
	}
	if err := r.validateInput(input); err != nil {
		return nil, err
	}

	// Reject before writing so a bogus article id surfaces as
	// NOT_FOUND rather than a constraint error.
	if _, err := r.store.GetArticle(p.Context, input.ArticleID); err != nil {
		return nil, err
	}

	comment, err := r.store.CreateComment(p.Context, user.ID, input)
	if err != nil {
		return nil, err
	}
	r.logger.WithFields(logging.Fields{
		"comment_id": comment.ID,
		"article_id": comment.ArticleID,
	}).Info("Comment created")
	return comment, nil
}

func (r *Resolver) resolveDeleteComment(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.guard.RequireAdmin(p.Context); err != nil {
		return nil, err
	}

	id := stringArg(p, "id")
	deleted, err := r.store.GetComment(p.Context, id)
	if err != nil {
		return nil, err
	}
	if err := r.store.DeleteComment(p.Context, id); err != nil {
		return nil, err
	}
	r.logger.WithField("comment_id", id).Info("Comment deleted")
	return deleted, nil
}
