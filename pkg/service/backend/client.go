package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxbook/pkg/domain/interfaces"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
	"github.com/secmon-lab/vaxbook/pkg/domain/types"
	"github.com/secmon-lab/vaxbook/pkg/utils/metrics"
)

// Backend endpoint paths, relative to the base URL
const (
	PathComboDetails = "/combo/details"
	PathVaccines     = "/vaccine/list"
	PathLogin        = "/auth/login"
	PathChildren     = "/children"
)

// maxErrorBody bounds how much of an error response is kept for diagnostics
const maxErrorBody = 1024

// Client is an HTTP client for the booking backend API
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	metrics    *metrics.Backend
}

// Option configures Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithMetrics records every call in m
func WithMetrics(m *metrics.Backend) Option {
	return func(client *Client) {
		client.metrics = m
	}
}

// New creates a backend client for baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid backend URL", goerr.V("url", baseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("backend URL must be http or https", goerr.V("url", baseURL))
	}

	client := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// envelope is the response wrapper used by every backend endpoint
type envelope[T any] struct {
	Result  T      `json:"result"`
	Message string `json:"message,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResult struct {
	Token string `json:"token"`
}

// ListComboRows fetches the flat combo-detail rows
func (c *Client) ListComboRows(ctx context.Context) ([]*model.ComboRow, error) {
	var rows []*model.ComboRow
	if err := c.do(ctx, "combo_details", http.MethodGet, PathComboDetails, "", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListVaccines fetches the vaccine catalog
func (c *Client) ListVaccines(ctx context.Context) ([]*model.Vaccine, error) {
	var vaccines []*model.Vaccine
	if err := c.do(ctx, "vaccines", http.MethodGet, PathVaccines, "", nil, &vaccines); err != nil {
		return nil, err
	}
	return vaccines, nil
}

// Login exchanges credentials for a backend access token
func (c *Client) Login(ctx context.Context, username, password string) (types.AccessToken, error) {
	var result loginResult
	req := loginRequest{Username: username, Password: password}
	if err := c.do(ctx, "login", http.MethodPost, PathLogin, "", req, &result); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", goerr.Wrap(model.ErrUnauthorized, "backend returned no token")
	}
	return types.AccessToken(result.Token), nil
}

// ListChildren fetches the child records of the token's account in their raw shape
func (c *Client) ListChildren(ctx context.Context, token types.AccessToken) ([]map[string]any, error) {
	if token == "" {
		return nil, goerr.Wrap(model.ErrUnauthorized, "token is required")
	}

	var children []map[string]any
	if err := c.do(ctx, "children", http.MethodGet, PathChildren, token, nil, &children); err != nil {
		return nil, err
	}
	return children, nil
}

func (c *Client) do(ctx context.Context, endpoint, method, path string, token types.AccessToken, body any, out any) error {
	logger := ctxlog.From(ctx)
	target := c.baseURL.JoinPath(path)

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body", goerr.V("path", path))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("path", path))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token.String())
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(endpoint, 0, time.Since(start))
		return goerr.Wrap(err, "backend request failed",
			goerr.V("method", method),
			goerr.V("path", path))
	}
	defer resp.Body.Close()
	c.metrics.ObserveRequest(endpoint, resp.StatusCode, time.Since(start))

	logger.Debug("Backend response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return goerr.Wrap(model.ErrUnauthorized, "backend rejected credentials",
			goerr.V("status", resp.StatusCode),
			goerr.V("path", path))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return goerr.New("backend returned error status",
			goerr.V("status", resp.StatusCode),
			goerr.V("path", path),
			goerr.V("body", string(errBody)))
	}

	env := envelope[json.RawMessage]{}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return goerr.Wrap(err, "failed to decode backend response", goerr.V("path", path))
	}
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return goerr.Wrap(err, "failed to decode backend result", goerr.V("path", path))
	}
	return nil
}

var _ interfaces.Backend = (*Client)(nil)
