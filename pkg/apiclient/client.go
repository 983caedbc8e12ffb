// Package apiclient is the Go client for the dashboard API. It mirrors the
// behavior a dashboard frontend needs from the backend: the unified response
// envelope, bearer-token auth through a single TokenStore, client-side form
// validation that avoids pointless round trips, and pure helpers for list
// filtering and sorting.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const apiPrefix = "/api/v1"

// TokenStore is the single source of truth for the access token. Every
// request reads from it and every login or logout writes through it; nothing
// else may hold token state.
type TokenStore interface {
	Token() string
	SetToken(token string)
	Clear()
}

// MemoryTokenStore keeps the token in memory, guarded for concurrent use.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore returns an empty in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

func (s *MemoryTokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
}

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	Status  int    // HTTP status code
	Code    string // Business error code, e.g. "OFFER_NOT_FOUND"
	Message string // User-friendly message
	Details string // Detailed error description
}

func (e *APIError) Error() string {
	var sb strings.Builder
	sb.WriteString("apiclient: ")
	sb.WriteString(http.StatusText(e.Status))
	if e.Code != "" {
		sb.WriteString(" [" + e.Code + "]")
	}
	if e.Message != "" {
		sb.WriteString(": " + e.Message)
	}

	return sb.String()
}

// Client talks to the dashboard API. Requests are never retried; failures
// surface immediately so the caller decides what to do.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	logger  *slog.Logger
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithTokenStore replaces the default in-memory token store.
func WithTokenStore(store TokenStore) Option {
	return func(c *Client) {
		c.tokens = store
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the API served at baseURL.
func New(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + apiPrefix,
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  NewMemoryTokenStore(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Tokens exposes the token store, e.g. for wiring a persistent one.
func (c *Client) Tokens() TokenStore {
	return c.tokens
}

// envelope mirrors the unified response structure of the API.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error,omitempty"`
}

// do sends a JSON request and decodes the envelope's data into out.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doMultipart sends a prebuilt multipart body.
func (c *Client) doMultipart(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", contentType)

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	var env envelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}

		return errors.Wrap(decodeErr, "failed to decode response")
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Details = env.Error.Details
		}
		c.logger.Debug("API request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("errorCode", apiErr.Code),
		)

		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "failed to decode response data")
		}
	}

	return nil
}
