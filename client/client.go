// Package client is a typed Go façade over the Yeoman GraphQL API.
// Query methods return live result streams that are re-pushed when a
// mutation invalidates the underlying query; mutation methods perform
// the write and refetch the dependent queries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"yeoman/internal/logging"
)

// Query keys used for mutation-driven invalidation.
const (
	keyArticles = "articles"
	keyComments = "comments"
)

func keyArticle(id string) string {
	return "article:" + id
}

// Error is a failure reported by the API, classified by the server's
// error taxonomy via the "code" extension.
type Error struct {
	Message string
	Code    string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return e.Message
}

// Config represents the configuration for the client
type Config struct {
	BaseURL string
	// Token is the bearer session token; empty means anonymous.
	Token   string
	Timeout time.Duration
	Logger  logging.Logger
}

// Client represents a Yeoman API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger

	mu         sync.Mutex
	token      string
	refetchers map[string]map[int]func(context.Context)
	nextID     int
}

// New creates a new API client
func New(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	logger := config.Logger
	if logger == nil {
		logger = logging.NewLogger()
	}

	return &Client{
		baseURL:    config.BaseURL,
		httpClient: &http.Client{Timeout: config.Timeout},
		token:      config.Token,
		logger:     logger,
		refetchers: make(map[string]map[int]func(context.Context)),
	}
}

// SetToken replaces the session token, e.g. after Login.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message    string                 `json:"message"`
		Extensions map[string]interface{} `json:"extensions"`
	} `json:"errors"`
}

// do executes one GraphQL operation and decodes the data payload
// into out.
func (c *Client) do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/graphql", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		apiErr := &Error{Message: envelope.Errors[0].Message}
		if code, ok := envelope.Errors[0].Extensions["code"].(string); ok {
			apiErr.Code = code
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode data: %w", err)
		}
	}
	return nil
}

// register attaches a live-query refetcher under a query key and
// returns its removal func.
func (c *Client) register(key string, refetch func(context.Context)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.refetchers[key] == nil {
		c.refetchers[key] = make(map[int]func(context.Context))
	}
	id := c.nextID
	c.nextID++
	c.refetchers[key][id] = refetch

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.refetchers[key], id)
	}
}

// invalidate refetches every live query registered under the given
// keys. Refetch failures surface on the affected streams, not here.
func (c *Client) invalidate(ctx context.Context, keys ...string) {
	c.mu.Lock()
	pending := []func(context.Context){}
	for _, key := range keys {
		for _, refetch := range c.refetchers[key] {
			pending = append(pending, refetch)
		}
	}
	c.mu.Unlock()

	for _, refetch := range pending {
		refetch(ctx)
	}
}
