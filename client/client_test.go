package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

// stubAPI is a minimal GraphQL endpoint backing the façade tests. It
// keeps an article list in memory and answers the handful of
// operations the tests exercise.
type stubAPI struct {
	mu       sync.Mutex
	articles []map[string]interface{}
	lastAuth string
	failWith *Error
}

func (s *stubAPI) addArticle(id, title string) map[string]interface{} {
	article := map[string]interface{}{
		"id":          id,
		"title":       title,
		"summary":     "summary",
		"content":     "content",
		"tags":        []string{"general"},
		"draft":       true,
		"createdAt":   "2024-05-01T00:00:00Z",
		"modifiedAt":  "2024-05-01T00:00:00Z",
		"publishedAt": nil,
	}
	s.articles = append(s.articles, article)
	return article
}

func (s *stubAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		s.lastAuth = r.Header.Get("Authorization")

		if s.failWith != nil {
			writeEnvelope(w, map[string]interface{}{
				"errors": []map[string]interface{}{{
					"message":    s.failWith.Message,
					"extensions": map[string]string{"code": s.failWith.Code},
				}},
			})
			return
		}

		switch {
		case strings.Contains(req.Query, "publishedArticles"):
			writeEnvelope(w, map[string]interface{}{
				"data": map[string]interface{}{"publishedArticles": s.articles},
			})
		case strings.Contains(req.Query, "postArticle"):
			title, _ := req.Variables["title"].(string)
			article := s.addArticle("a-new", title)
			writeEnvelope(w, map[string]interface{}{
				"data": map[string]interface{}{"postArticle": article},
			})
		case strings.Contains(req.Query, "login"):
			writeEnvelope(w, map[string]interface{}{
				"data": map[string]interface{}{"login": map[string]interface{}{
					"token": "session-token",
					"user": map[string]interface{}{
						"id": "u1", "name": "admin",
						"email": "admin@example.com", "createdAt": "2024-01-01T00:00:00Z",
					},
				}},
			})
		default:
			http.Error(w, "unhandled query", http.StatusBadRequest)
		}
	})
}

func writeEnvelope(w http.ResponseWriter, envelope map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(envelope)
}

func newTestClient(t *testing.T) (*Client, *stubAPI) {
	t.Helper()
	api := &stubAPI{}
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(Config{BaseURL: server.URL, Logger: logger}), api
}

func TestLiveQueryRefetchesAfterMutation(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	stream := c.GetPublishedArticles(ctx, "", 0, 0)
	defer stream.Unsubscribe()

	initial, err := stream.Next(ctx)
	if err != nil {
		t.Fatalf("initial fetch failed: %v", err)
	}
	if len(initial) != 0 {
		t.Fatalf("expected empty initial list, got %d", len(initial))
	}

	if _, err := c.PostArticle(ctx, ArticleInput{Title: "Fresh", Summary: "s", Content: "c"}); err != nil {
		t.Fatalf("PostArticle failed: %v", err)
	}

	refreshed, err := stream.Next(ctx)
	if err != nil {
		t.Fatalf("refetch failed: %v", err)
	}
	if len(refreshed) != 1 || refreshed[0].Title != "Fresh" {
		t.Fatalf("stream did not pick up the mutation: %+v", refreshed)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	stream := c.GetPublishedArticles(ctx, "", 0, 0)
	if _, err := stream.Next(ctx); err != nil {
		t.Fatalf("initial fetch failed: %v", err)
	}
	stream.Unsubscribe()

	if _, err := c.PostArticle(ctx, ArticleInput{Title: "After", Summary: "s", Content: "c"}); err != nil {
		t.Fatalf("PostArticle failed: %v", err)
	}

	if _, err := stream.Next(ctx); !errors.Is(err, ErrUnsubscribed) {
		t.Fatalf("expected ErrUnsubscribed, got %v", err)
	}
}

func TestStreamKeepsLatestResult(t *testing.T) {
	s := newStream[int]()
	s.push(Result[int]{Value: 1})
	s.push(Result[int]{Value: 2})

	value, err := s.Next(context.Background())
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if value != 2 {
		t.Fatalf("expected latest value 2, got %d", value)
	}
}

func TestStreamNextHonorsContext(t *testing.T) {
	s := newStream[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := s.Next(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestErrorCodeSurfaces(t *testing.T) {
	c, api := newTestClient(t)
	api.failWith = &Error{Message: "Not authorized", Code: "NOT_AUTHORIZED"}

	_, err := c.PostArticle(context.Background(), ArticleInput{Title: "t", Summary: "s", Content: "c"})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *client.Error, got %v", err)
	}
	if apiErr.Code != "NOT_AUTHORIZED" || apiErr.Message != "Not authorized" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestFailedQuerySurfacesOnStream(t *testing.T) {
	c, api := newTestClient(t)
	api.failWith = &Error{Message: "request failed", Code: "INTERNAL"}

	stream := c.GetPublishedArticles(context.Background(), "", 0, 0)
	defer stream.Unsubscribe()

	_, err := stream.Next(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Code != "INTERNAL" {
		t.Fatalf("expected INTERNAL stream error, got %v", err)
	}
}

func TestLoginAdoptsSessionToken(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()

	payload, err := c.Login(ctx, "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if payload.Token != "session-token" || payload.User.Name != "admin" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	if _, err := c.PostArticle(ctx, ArticleInput{Title: "t", Summary: "s", Content: "c"}); err != nil {
		t.Fatalf("PostArticle failed: %v", err)
	}
	api.mu.Lock()
	auth := api.lastAuth
	api.mu.Unlock()
	if auth != "Bearer session-token" {
		t.Fatalf("session token not sent: %q", auth)
	}
}
