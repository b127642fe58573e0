package graph

import (
	"github.com/graphql-go/graphql"

	"yeoman/internal/models"
)

func articleFromSource(source interface{}) *models.Article {
	switch v := source.(type) {
	case *models.Article:
		return v
	case models.Article:
		return &v
	}
	return nil
}

func commentFromSource(source interface{}) *models.Comment {
	switch v := source.(type) {
	case *models.Comment:
		return v
	case models.Comment:
		return &v
	}
	return nil
}

func pageFromSource(source interface{}) *models.Page {
	switch v := source.(type) {
	case *models.Page:
		return v
	case models.Page:
		return &v
	}
	return nil
}

func userFromSource(source interface{}) *models.User {
	switch v := source.(type) {
	case *models.User:
		return v
	case models.User:
		return &v
	}
	return nil
}

func (r *Resolver) defineUserType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if user := userFromSource(p.Source); user != nil {
						return user.CreatedAt, nil
					}
					return nil, nil
				},
			},
		},
	})
}

func (r *Resolver) defineFileType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "File",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"extension": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})
}

func (r *Resolver) defineArticleType(userType, fileType *graphql.Object) (*graphql.Object, *graphql.Object) {
	articleType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Article",
		Description: "A piece of content; drafts are visible to the admin only",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"summary": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"content": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"tags":    &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
			"draft":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if article := articleFromSource(p.Source); article != nil {
						return article.CreatedAt, nil
					}
					return nil, nil
				},
			},
			"modifiedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if article := articleFromSource(p.Source); article != nil {
						return article.ModifiedAt, nil
					}
					return nil, nil
				},
			},
			"publishedAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					article := articleFromSource(p.Source)
					if article == nil || article.PublishedAt == nil {
						return nil, nil
					}
					return *article.PublishedAt, nil
				},
			},
			"files": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(fileType))),
				Resolve: r.nested("Article.files", func(p graphql.ResolveParams) (interface{}, error) {
					if article := articleFromSource(p.Source); article != nil {
						return r.store.ListFilesByDocument(p.Context, article.ID)
					}
					return nil, nil
				}),
			},
		},
	})

	commentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Comment",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"content": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if comment := commentFromSource(p.Source); comment != nil {
						return comment.CreatedAt, nil
					}
					return nil, nil
				},
			},
			"modifiedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if comment := commentFromSource(p.Source); comment != nil {
						return comment.ModifiedAt, nil
					}
					return nil, nil
				},
			},
			"user": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Resolve: r.nested("Comment.user", func(p graphql.ResolveParams) (interface{}, error) {
					if comment := commentFromSource(p.Source); comment != nil {
						return r.store.GetUserByID(p.Context, comment.UserID)
					}
					return nil, nil
				}),
			},
			"article": &graphql.Field{
				Type: graphql.NewNonNull(articleType),
				Resolve: r.nested("Comment.article", func(p graphql.ResolveParams) (interface{}, error) {
					if comment := commentFromSource(p.Source); comment != nil {
						return r.store.GetArticle(p.Context, comment.ArticleID)
					}
					return nil, nil
				}),
			},
		},
	})

	// Article.comments closes the cycle, so it is attached after both
	// types exist.
	articleType.AddFieldConfig("comments", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType))),
		Resolve: r.nested("Article.comments", func(p graphql.ResolveParams) (interface{}, error) {
			if article := articleFromSource(p.Source); article != nil {
				return r.store.ListCommentsByArticle(p.Context, article.ID)
			}
			return nil, nil
		}),
	})

	return articleType, commentType
}

func (r *Resolver) definePageType(fileType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Page",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"content": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if page := pageFromSource(p.Source); page != nil {
						return page.CreatedAt, nil
					}
					return nil, nil
				},
			},
			"files": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(fileType))),
				Resolve: r.nested("Page.files", func(p graphql.ResolveParams) (interface{}, error) {
					if page := pageFromSource(p.Source); page != nil {
						return r.store.ListFilesByDocument(p.Context, page.ID)
					}
					return nil, nil
				}),
			},
		},
	})
}

// NewSchema assembles the executable schema.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := r.defineUserType()
	fileType := r.defineFileType()
	articleType, commentType := r.defineArticleType(userType, fileType)
	pageType := r.definePageType(fileType)

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
		},
	})

	paginationArgs := graphql.FieldConfigArgument{
		"skip":  &graphql.ArgumentConfig{Type: graphql.Int},
		"first": &graphql.ArgumentConfig{Type: graphql.Int},
	}
	withFilter := graphql.FieldConfigArgument{
		"filter": &graphql.ArgumentConfig{Type: graphql.String},
		"skip":   &graphql.ArgumentConfig{Type: graphql.Int},
		"first":  &graphql.ArgumentConfig{Type: graphql.Int},
	}
	articleInputArgs := graphql.FieldConfigArgument{
		"title":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"summary": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"tags":    &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"publishedArticles": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(articleType))),
				Args:    withFilter,
				Resolve: r.instrument("publishedArticles", r.resolvePublishedArticles),
			},
			"allArticles": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(articleType))),
				Description: "All articles including drafts; the draft gate applies to single-article reads only",
				Args:        paginationArgs,
				Resolve:     r.instrument("allArticles", r.resolveAllArticles),
			},
			"article": &graphql.Field{
				Type: articleType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.instrument("article", r.resolveArticle),
			},
			"comments": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType))),
				Args:    paginationArgs,
				Resolve: r.instrument("comments", r.resolveComments),
			},
			"page": &graphql.Field{
				Type: pageType,
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.instrument("page", r.resolvePage),
			},
			"pages": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(pageType))),
				Resolve: r.instrument("pages", r.resolvePages),
			},
			"files": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(fileType))),
				Args: graphql.FieldConfigArgument{
					"documentId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.instrument("files", r.resolveFiles),
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.instrument("signup", r.resolveSignup),
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.instrument("login", r.resolveLogin),
			},
			"postArticle": &graphql.Field{
				Type:    graphql.NewNonNull(articleType),
				Args:    articleInputArgs,
				Resolve: r.instrument("postArticle", r.resolvePostArticle),
			},
			"updateArticle": &graphql.Field{
				Type: graphql.NewNonNull(articleType),
				Args: graphql.FieldConfigArgument{
					"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"title":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"summary": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"tags":    &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
				},
				Resolve: r.instrument("updateArticle", r.resolveUpdateArticle),
			},
			"publishArticle": &graphql.Field{
				Type: graphql.NewNonNull(articleType),
				Args: graphql.FieldConfigArgument{
					"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"publish": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Boolean)},
				},
				Resolve: r.instrument("publishArticle", r.resolvePublishArticle),
			},
			"deleteArticle": &graphql.Field{
				Type: graphql.NewNonNull(articleType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.instrument("deleteArticle", r.resolveDeleteArticle),
			},
			"postPage": &graphql.Field{
				Type: graphql.NewNonNull(pageType),
				Args: graphql.FieldConfigArgument{
					"name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.instrument("postPage", r.resolvePostPage),
			},
			"attachFile": &graphql.Field{
				Type:        graphql.NewNonNull(fileType),
				Description: "Attaches file metadata to exactly one of a page or an article",
				Args: graphql.FieldConfigArgument{
					"name":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"extension": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"pageId":    &graphql.ArgumentConfig{Type: graphql.ID},
					"articleId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.instrument("attachFile", r.resolveAttachFile),
			},
			"postComment": &graphql.Field{
				Type: graphql.NewNonNull(commentType),
				Args: graphql.FieldConfigArgument{
					"content":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"articleId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.instrument("postComment", r.resolvePostComment),
			},
			"deleteComment": &graphql.Field{
				Type: graphql.NewNonNull(commentType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.instrument("deleteComment", r.resolveDeleteComment),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
