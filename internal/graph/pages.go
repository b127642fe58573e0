package graph

import (
	"github.com/graphql-go/graphql"

	"yeoman/internal/logging"
	"yeoman/internal/models"
)

func (r *Resolver) resolvePage(p graphql.ResolveParams) (interface{}, error) {
	return r.store.GetPageByName(p.Context, stringArg(p, "name"))
}

func (r *Resolver) resolvePages(p graphql.ResolveParams) (interface{}, error) {
	return r.store.ListPages(p.Context)
}

func (r *Resolver) resolveFiles(p graphql.ResolveParams) (interface{}, error) {
	return r.store.ListFilesByDocument(p.Context, stringArg(p, "documentId"))
}

func (r *Resolver) resolvePostPage(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.guard.RequireAdmin(p.Context); err != nil {
		return nil, err
	}

	input := models.PageInput{
		Name:    stringArg(p, "name"),
		Content: stringArg(p, "content"),
	}
	if err := r.validateInput(input); err != nil {
		return nil, err
	}

	page, err := r.store.CreatePage(p.Context, input.Name, input.Content)
	if err != nil {
		return nil, err
	}
	r.logger.WithFields(logging.Fields{
		"page_id": page.ID,
		"name":    page.Name,
	}).Info("Page created")
	return page, nil
}

func (r *Resolver) resolveAttachFile(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.guard.RequireAdmin(p.Context); err != nil {
		return nil, err
	}

	file, err := r.store.CreateFile(p.Context,
		stringArg(p, "name"), stringArg(p, "extension"),
		stringPtrArg(p, "pageId"), stringPtrArg(p, "articleId"))
	if err != nil {
		return nil, err
	}
	r.logger.WithFields(logging.Fields{
		"file_id": file.ID,
		"name":    file.Name,
	}).Info("File attached")
	return file, nil
}
