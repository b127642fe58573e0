package client

import (
	"context"
)

const (
	mutationSignup = `mutation Signup($name: String!, $email: String!, $password: String!) {
		signup(name: $name, email: $email, password: $password) {
			token
			user { id name email createdAt }
		}
	}`
	mutationLogin = `mutation Login($email: String!, $password: String!) {
		login(email: $email, password: $password) {
			token
			user { id name email createdAt }
		}
	}`
	mutationPostArticle = `mutation PostArticle($title: String!, $summary: String!, $content: String!, $tags: [String!]) {
		postArticle(title: $title, summary: $summary, content: $content, tags: $tags) { ` + articleFields + ` }
	}`
	mutationUpdateArticle = `mutation UpdateArticle($id: ID!, $title: String!, $summary: String!, $content: String!, $tags: [String!]) {
		updateArticle(id: $id, title: $title, summary: $summary, content: $content, tags: $tags) { ` + articleFields + ` }
	}`
	mutationPublishArticle = `mutation PublishArticle($id: ID!, $publish: Boolean!) {
		publishArticle(id: $id, publish: $publish) { ` + articleFields + ` }
	}`
	mutationDeleteArticle = `mutation DeleteArticle($id: ID!) {
		deleteArticle(id: $id) { ` + articleFields + ` }
	}`
	mutationPostPage = `mutation PostPage($name: String!, $content: String!) {
		postPage(name: $name, content: $content) { id name content createdAt }
	}`
	mutationAttachFile = `mutation AttachFile($name: String!, $extension: String!, $pageId: ID, $articleId: ID) {
		attachFile(name: $name, extension: $extension, pageId: $pageId, articleId: $articleId) {
			id name extension
		}
	}`
	mutationPostComment = `mutation PostComment($content: String!, $articleId: ID!) {
		postComment(content: $content, articleId: $articleId) {
			id content createdAt
			user { id name email createdAt }
			article { id }
		}
	}`
	mutationDeleteComment = `mutation DeleteComment($id: ID!) {
		deleteComment(id: $id) {
			id content createdAt
			user { id name email createdAt }
			article { id }
		}
	}`
)

// Signup registers a new user and adopts the returned session token.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*AuthPayload, error) {
	var resp struct {
		Signup AuthPayload `json:"signup"`
	}
	err := c.do(ctx, mutationSignup, map[string]interface{}{
		"name": name, "email": email, "password": password,
	}, &resp)
	if err != nil {
		c.logger.WithError(err).Warn("Signup failed")
		return nil, err
	}
	c.SetToken(resp.Signup.Token)
	c.logger.WithField("user_id", resp.Signup.User.ID).Info("Signed up")
	return &resp.Signup, nil
}

// Login authenticates and adopts the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	var resp struct {
		Login AuthPayload `json:"login"`
	}
	err := c.do(ctx, mutationLogin, map[string]interface{}{
		"email": email, "password": password,
	}, &resp)
	if err != nil {
		c.logger.WithError(err).Warn("Login failed")
		return nil, err
	}
	c.SetToken(resp.Login.Token)
	c.logger.WithField("user_id", resp.Login.User.ID).Info("Logged in")
	return &resp.Login, nil
}

// PostArticle creates a draft article and refetches the article lists.
func (c *Client) PostArticle(ctx context.Context, input ArticleInput) (*Article, error) {
	var resp struct {
		PostArticle Article `json:"postArticle"`
	}
	err := c.do(ctx, mutationPostArticle, map[string]interface{}{
		"title": input.Title, "summary": input.Summary,
		"content": input.Content, "tags": input.Tags,
	}, &resp)
	if err != nil {
		c.logger.WithError(err).Warn("Article creation failed")
		return nil, err
	}
	c.logger.WithField("article_id", resp.PostArticle.ID).Info("Article created")
	c.invalidate(ctx, keyArticles)
	return &resp.PostArticle, nil
}

// UpdateArticle overwrites an article's fields and refetches it along
// with the article lists.
func (c *Client) UpdateArticle(ctx context.Context, id string, input ArticleInput) (*Article, error) {
	var resp struct {
		UpdateArticle Article `json:"updateArticle"`
	}
	err := c.do(ctx, mutationUpdateArticle, map[string]interface{}{
		"id": id, "title": input.Title, "summary": input.Summary,
		"content": input.Content, "tags": input.Tags,
	}, &resp)
	if err != nil {
		c.logger.WithError(err).WithField("article_id", id).Warn("Article update failed")
		return nil, err
	}
	c.logger.WithField("article_id", id).Info("Article updated")
	c.invalidate(ctx, keyArticle(id), keyArticles)
	return &resp.UpdateArticle, nil
}

// PublishArticle publishes or unpublishes an article.
func (c *Client) PublishArticle(ctx context.Context, id string, publish bool) (*Article, error) {
	var resp struct {
		PublishArticle Article `json:"publishArticle"`
	}
	err := c.do(ctx, mutationPublishArticle, map[string]interface{}{
		"id": id, "publish": publish,
	}, &resp)
	if err != nil {
		c.logger.WithError(err).WithField("article_id", id).Warn("Article publish failed")
		return nil, err
	}
	c.logger.WithField("article_id", id).Info("Article publish state changed")
	c.invalidate(ctx, keyArticle(id), keyArticles)
	return &resp.PublishArticle, nil
}

// DeleteArticle removes an article and refetches the article lists.
func (c *Client) DeleteArticle(ctx context.Context, id string) (*Article, error) {
	var resp struct {
		DeleteArticle Article `json:"deleteArticle"`
	}
	err := c.do(ctx, mutationDeleteArticle, map[string]interface{}{"id": id}, &resp)
	if err != nil {
		c.logger.WithError(err).WithField("article_id", id).Warn("Article deletion failed")
		return nil, err
	}
	c.logger.WithField("article_id", id).Info("Article deleted")
	c.invalidate(ctx, keyArticles)
	return &resp.DeleteArticle, nil
}

// PostPage creates a named page.
func (c *Client) PostPage(ctx context.Context, name, content string) (*Page, error) {
	var resp struct {
		PostPage Page `json:"postPage"`
	}
	err := c.do(ctx, mutationPostPage, map[string]interface{}{
		"name": name, "content": content,
	}, &resp)
	if err != nil {
		c.logger.WithError(err).WithField("page", name).Warn("Page creation failed")
		return nil, err
	}
	c.logger.WithField("page_id", resp.PostPage.ID).Info("Page created")
	return &resp.PostPage, nil
}

// AttachFile records file metadata against exactly one of a page or
// an article; leave the other id empty.
func (c *Client) AttachFile(ctx context.Context, name, extension, pageID, articleID string) (*File, error) {
	variables := map[string]interface{}{"name": name, "extension": extension}
	if pageID != "" {
		variables["pageId"] = pageID
	}
	if articleID != "" {
		variables["articleId"] = articleID
	}

	var resp struct {
		AttachFile File `json:"attachFile"`
	}
	if err := c.do(ctx, mutationAttachFile, variables, &resp); err != nil {
		c.logger.WithError(err).Warn("File attachment failed")
		return nil, err
	}
	c.logger.WithField("file_id", resp.AttachFile.ID).Info("File attached")
	return &resp.AttachFile, nil
}

// PostComment comments on an article and refetches the comment list.
func (c *Client) PostComment(ctx context.Context, content, articleID string) (*Comment, error) {
	var resp struct {
		PostComment Comment `json:"postComment"`
	}
	err := c.do(ctx, mutationPostComment, map[string]interface{}{
		"content": content, "articleId": articleID,
	}, &resp)
	if err != nil {
		c.logger.WithError(err).WithField("article_id", articleID).Warn("Comment creation failed")
		return nil, err
	}
	c.logger.WithField("comment_id", resp.PostComment.ID).Info("Comment created")
	c.invalidate(ctx, keyComments)
	return &resp.PostComment, nil
}

// DeleteComment removes a comment and refetches the comment list.
func (c *Client) DeleteComment(ctx context.Context, id string) (*Comment, error) {
	var resp struct {
		DeleteComment Comment `json:"deleteComment"`
	}
	err := c.do(ctx, mutationDeleteComment, map[string]interface{}{"id": id}, &resp)
	if err != nil {
		c.logger.WithError(err).WithField("comment_id", id).Warn("Comment deletion failed")
		return nil, err
	}
	c.logger.WithField("comment_id", id).Info("Comment deleted")
	c.invalidate(ctx, keyComments)
	return &resp.DeleteComment, nil
}
