package client

import (
	"context"
)

const articleFields = `id title summary content tags draft createdAt modifiedAt publishedAt`

const (
	queryPublishedArticles = `query PublishedArticles($filter: String, $skip: Int, $first: Int) {
		publishedArticles(filter: $filter, skip: $skip, first: $first) { ` + articleFields + ` }
	}`
	queryAllArticles = `query AllArticles($skip: Int, $first: Int) {
		allArticles(skip: $skip, first: $first) { ` + articleFields + ` }
	}`
	queryArticle = `query Article($id: ID!) {
		article(id: $id) { ` + articleFields + ` }
	}`
	queryComments = `query Comments($skip: Int, $first: Int) {
		comments(skip: $skip, first: $first) {
			id content createdAt
			user { id name email createdAt }
			article { id }
		}
	}`
	queryPage = `query Page($name: String!) {
		page(name: $name) { id name content createdAt }
	}`
	queryPages = `query Pages {
		pages { id name content createdAt }
	}`
	queryFiles = `query Files($documentId: ID!) {
		files(documentId: $documentId) { id name extension }
	}`
)

// liveQuery runs the initial fetch, pushes its result, and keeps the
// stream registered for mutation-driven refetches until Unsubscribe.
func liveQuery[T any](c *Client, ctx context.Context, key, operation string, fetch func(context.Context) (T, error)) *Stream[T] {
	s := newStream[T]()
	run := func(ctx context.Context) {
		value, err := fetch(ctx)
		if err != nil {
			c.logger.WithError(err).WithField("operation", operation).Warn("Query failed")
		} else {
			c.logger.WithField("operation", operation).Debug("Query result delivered")
		}
		s.push(Result[T]{Value: value, Err: err})
	}
	s.unsubscribe = c.register(key, run)
	run(ctx)
	return s
}

// GetPublishedArticles streams the non-draft article list, optionally
// filtered by substring on title or summary.
func (c *Client) GetPublishedArticles(ctx context.Context, filter string, skip, first int) *Stream[[]Article] {
	variables := map[string]interface{}{"skip": skip, "first": first}
	if filter != "" {
		variables["filter"] = filter
	}
	return liveQuery(c, ctx, keyArticles, "publishedArticles", func(ctx context.Context) ([]Article, error) {
		var resp struct {
			PublishedArticles []Article `json:"publishedArticles"`
		}
		err := c.do(ctx, queryPublishedArticles, variables, &resp)
		return resp.PublishedArticles, err
	})
}

// GetArticles streams the full article list, drafts included.
func (c *Client) GetArticles(ctx context.Context, skip, first int) *Stream[[]Article] {
	variables := map[string]interface{}{"skip": skip, "first": first}
	return liveQuery(c, ctx, keyArticles, "allArticles", func(ctx context.Context) ([]Article, error) {
		var resp struct {
			AllArticles []Article `json:"allArticles"`
		}
		err := c.do(ctx, queryAllArticles, variables, &resp)
		return resp.AllArticles, err
	})
}

// GetArticle streams one article; it is re-pushed after update and
// publish mutations through this client.
func (c *Client) GetArticle(ctx context.Context, id string) *Stream[Article] {
	variables := map[string]interface{}{"id": id}
	return liveQuery(c, ctx, keyArticle(id), "article", func(ctx context.Context) (Article, error) {
		var resp struct {
			Article Article `json:"article"`
		}
		err := c.do(ctx, queryArticle, variables, &resp)
		return resp.Article, err
	})
}

// GetComments streams the comment list.
func (c *Client) GetComments(ctx context.Context, skip, first int) *Stream[[]Comment] {
	variables := map[string]interface{}{"skip": skip, "first": first}
	return liveQuery(c, ctx, keyComments, "comments", func(ctx context.Context) ([]Comment, error) {
		var resp struct {
			Comments []Comment `json:"comments"`
		}
		err := c.do(ctx, queryComments, variables, &resp)
		return resp.Comments, err
	})
}

// GetPage fetches a page by name. Pages have no mutating operations,
// so this is a plain single-shot read.
func (c *Client) GetPage(ctx context.Context, name string) (*Page, error) {
	var resp struct {
		Page *Page `json:"page"`
	}
	if err := c.do(ctx, queryPage, map[string]interface{}{"name": name}, &resp); err != nil {
		c.logger.WithError(err).WithField("page", name).Warn("Query failed")
		return nil, err
	}
	c.logger.WithField("page", name).Debug("Page fetched")
	return resp.Page, nil
}

// GetPages fetches all pages.
func (c *Client) GetPages(ctx context.Context) ([]Page, error) {
	var resp struct {
		Pages []Page `json:"pages"`
	}
	if err := c.do(ctx, queryPages, nil, &resp); err != nil {
		c.logger.WithError(err).Warn("Query failed")
		return nil, err
	}
	return resp.Pages, nil
}

// GetFiles fetches the files attached to a page or article.
func (c *Client) GetFiles(ctx context.Context, documentID string) ([]File, error) {
	var resp struct {
		Files []File `json:"files"`
	}
	if err := c.do(ctx, queryFiles, map[string]interface{}{"documentId": documentID}, &resp); err != nil {
		c.logger.WithError(err).WithField("document_id", documentID).Warn("Query failed")
		return nil, err
	}
	return resp.Files, nil
}
