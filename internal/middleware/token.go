package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"yeoman/internal/auth"
)

// TokenContextMiddleware extracts a bearer token from the
// Authorization header and stashes it on the request context for the
// GraphQL resolvers. Requests without a token proceed as anonymous;
// verification happens in the authorization guard, not here.
func TokenContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header != "" {
			parts := strings.Split(header, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				ctx := auth.WithToken(c.Request.Context(), parts[1])
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}
