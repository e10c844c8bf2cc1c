// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

// package api is the authenticated gateway to the tourism-discovery REST
// API. It exposes one method per HTTP verb plus typed resource services
// built on top of them. The current bearer token is read through an
// injected TokenSource at dispatch time, so a sign-out between two
// in-flight requests is observed independently by each.
package api // import "github.com/rutero-app/rutero/internal/api"

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rutero-app/rutero/internal/logging"
)

// TokenSource yields the current session token, or "" when the user is
// not authenticated.
type TokenSource func() string

// Response is the normalized result of a successful call.
type Response struct {
	Data   json.RawMessage
	Status int
}

// Client is the tourism API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	userAgent  string

	Auth    *AuthService
	Spots   *SpotService
	Reviews *ReviewService
	Routes  *RouteService
	Catalog *CatalogService
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(client *Client) {
		client.userAgent = ua
	}
}

// New creates a tourism API client for the given base URL. tokens may be
// nil for a client that never authenticates.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "rutero",
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthService{c: c}
	c.Spots = &SpotService{c: c}
	c.Reviews = &ReviewService{c: c}
	c.Routes = &RouteService{c: c}
	c.Catalog = &CatalogService{c: c}
	return c
}

// requestConfig carries per-call headers and query parameters.
type requestConfig struct {
	header http.Header
	query  url.Values
}

// RequestOption customizes a single call.
type RequestOption func(*requestConfig)

// WithHeader sets a header on the outgoing request. Caller-supplied
// headers win over the automatically attached ones, including
// Authorization.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		rc.header.Set(key, value)
	}
}

// WithBearer sends the given token instead of the one the TokenSource
// currently yields.
func WithBearer(token string) RequestOption {
	return WithHeader("Authorization", "Bearer "+token)
}

// WithQuery adds a query parameter to the outgoing request.
func WithQuery(key, value string) RequestOption {
	return func(rc *requestConfig) {
		rc.query.Set(key, value)
	}
}

// Get performs a GET request against path.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body, opts)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body, opts)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, body, opts)
}

// Delete performs a DELETE request against path.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, opts)
}

// do performs the HTTP round trip and normalizes the outcome. Any 2xx
// status yields a Response; everything else yields an *Error carrying the
// status and the raw body so callers can branch on specific codes.
func (c *Client) do(ctx context.Context, method, path string, body any, opts []RequestOption) (*Response, error) {
	rc := requestConfig{header: make(http.Header), query: make(url.Values)}
	for _, opt := range opts {
		opt(&rc)
	}

	target, err := c.buildURL(path, rc.query)
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if tok := c.tokens(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	// Per-call headers win, Authorization included.
	for key, values := range rc.header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	logging.Debugf("api: %s %s", method, target)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Status: resp.StatusCode,
			Body:   respBody,
			Method: method,
			Path:   path,
		}
	}

	return &Response{Data: respBody, Status: resp.StatusCode}, nil
}

// buildURL joins the base URL with path and merges extra query values.
// path may already carry its own query string.
func (c *Client) buildURL(path string, extra url.Values) (string, error) {
	full := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	u, err := url.Parse(full)
	if err != nil {
		return "", err
	}
	if len(extra) > 0 {
		q := u.Query()
		for key, values := range extra {
			for _, v := range values {
				q.Set(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// Decode unmarshals a response body into T. Empty bodies (204s) decode to
// the zero value.
func Decode[T any](resp *Response) (T, error) {
	var v T
	if resp == nil || len(resp.Data) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(resp.Data, &v); err != nil {
		return v, fmt.Errorf("unmarshal response: %w", err)
	}
	return v, nil
}
