package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"yeoman/internal/auth"
)

func TestTokenContextMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{"no header", "", "", false},
		{"wrong scheme", "Basic abc123", "", false},
		{"missing token", "Bearer", "", false},
		{"bearer token", "Bearer tok-123", "tok-123", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotToken string
			var gotOK bool

			router := gin.New()
			router.Use(TokenContextMiddleware())
			router.GET("/", func(c *gin.Context) {
				gotToken, gotOK = auth.TokenFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if gotOK != tt.wantOK || gotToken != tt.wantToken {
				t.Fatalf("got (%q, %v), want (%q, %v)", gotToken, gotOK, tt.wantToken, tt.wantOK)
			}
		})
	}
}
