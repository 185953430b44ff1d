// Package roamapi talks to the Roam Research backend query API.
package roamapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"roamstats/internal/domain"
	"roamstats/internal/log"
	"roamstats/internal/ports"
)

var (
	ErrUnauthorized = errors.New("roam api: unauthorized")
	ErrRateLimited  = errors.New("roam api: rate limited")
)

// APIError is a non-2xx answer from the backend
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("roam api: status %d", e.Status)
	}
	return fmt.Sprintf("roam api: status %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrRateLimited:
		return e.Status == http.StatusTooManyRequests
	}
	return false
}

// Client implements ports.QueryEngine against one graph
type Client struct {
	baseURL string
	graph   string
	token   string
	timeout time.Duration
	http    *http.Client
}

var _ ports.QueryEngine = (*Client)(nil)

// Option configures the Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout. It applies to a copy of the
// http.Client, whatever the option order, so a client passed through
// WithHTTPClient is never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a client for graph on the backend at baseURL
func NewClient(baseURL, graph, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		graph:   graph,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// Graph returns the graph name the client queries
func (c *Client) Graph() string {
	return c.graph
}

type queryRequest struct {
	Query string `json:"query"`
	Args  []any  `json:"args,omitempty"`
}

type queryResponse struct {
	Result  any    `json:"result"`
	Message string `json:"message"`
}

// Query runs a Datalog query and returns the decoded "result" field.
// Numbers are decoded as json.Number.
func (c *Client) Query(ctx context.Context, query string, args ...any) (any, error) {
	body, err := json.Marshal(queryRequest{Query: query, Args: args})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/graph/%s/q", c.baseURL, url.PathEscape(c.graph))
	// bytes.Reader lets the client replay the body on the backend's 307/308 peer redirect.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", c.graph, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	log.Debug(map[string]any{
		"graph":    c.graph,
		"status":   resp.StatusCode,
		"duration": time.Since(started).String(),
	}, "roam query")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	var out queryResponse
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.Result, nil
}

// ResolvePageUID returns the uid of the page titled title. ok is false when
// no such page exists.
func (c *Client) ResolvePageUID(ctx context.Context, title string) (uid string, ok bool, err error) {
	raw, err := c.Query(ctx, domain.PageUIDQuery, title)
	if err != nil {
		return "", false, err
	}
	s, isString := raw.(string)
	if !isString || s == "" {
		return "", false, nil
	}
	return s, true, nil
}

func errorMessage(data []byte) string {
	var body queryResponse
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	msg := strings.TrimSpace(string(data))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
