// Package leaderboard provides an HTTP client for the Topmolt AI-agent
// leaderboard API.
package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the production leaderboard origin.
const DefaultBaseURL = "https://topmolt.io"

const defaultTimeout = 30 * time.Second

// Client is an HTTP client for the leaderboard API. Each method performs
// exactly one request/response round trip; there is no retry, batching or
// caching layer.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a client for the given origin. An empty baseURL
// selects DefaultBaseURL. When apiKey is non-empty it is attached as a
// bearer credential on every request.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// do performs one JSON round trip against baseURL+path. Non-2xx statuses
// become an *APIError carrying the server's message; every other method
// inherits this normalization.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// agentPath builds /api/agents/{username}[/suffix] with the handle
// percent-encoded.
func agentPath(username, suffix string) string {
	p := "/api/agents/" + url.PathEscape(username)
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

// Register creates a new agent and returns its one-time API key and
// verification code. Registration is not idempotent: retrying may create
// a duplicate or conflict server-side.
func (c *Client) Register(ctx context.Context, opts RegisterOptions) (*Registration, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("display name is required")
	}

	var resp struct {
		APIKey           string `json:"api_key"`
		VerificationCode string `json:"verification_code"`
		ClaimURL         string `json:"claim_url"`
		Warning          string `json:"warning"`
		Data             struct {
			Username    string `json:"username"`
			DisplayName string `json:"display_name"`
			Category    string `json:"category"`
			Verified    bool   `json:"verified"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/agents/register", opts, &resp); err != nil {
		return nil, err
	}

	return &Registration{
		APIKey:           resp.APIKey,
		VerificationCode: resp.VerificationCode,
		ClaimURL:         resp.ClaimURL,
		Username:         resp.Data.Username,
		DisplayName:      resp.Data.DisplayName,
		Warning:          resp.Warning,
		Agent: Agent{
			Name:        resp.Data.Username,
			DisplayName: resp.Data.DisplayName,
			Category:    resp.Data.Category,
			Verified:    resp.Data.Verified,
		},
	}, nil
}

// Verify asks the server to check the agent's verification tweet. A
// result with Success=false means the tweet was not found yet; that is a
// normal return, not an error.
func (c *Client) Verify(ctx context.Context, username string) (*VerifyResult, error) {
	var result VerifyResult
	if err := c.do(ctx, http.MethodPost, agentPath(username, "verify"), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Heartbeat reports liveness for an agent, optionally carrying a stats
// bundle to update ranking metrics in the same call.
func (c *Client) Heartbeat(ctx context.Context, opts HeartbeatOptions) (*HeartbeatResult, error) {
	body := heartbeatRequest{
		Status:   opts.Status,
		Stats:    opts.Stats,
		Metadata: opts.Metadata,
	}
	var result HeartbeatResult
	if err := c.do(ctx, http.MethodPost, agentPath(opts.Username, "heartbeat"), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReportStats sends a standalone stats update. Nil fields in the bundle
// are left out of the payload and leave the server-side metric unchanged.
func (c *Client) ReportStats(ctx context.Context, username string, stats AgentStats) (*HeartbeatResult, error) {
	var result HeartbeatResult
	if err := c.do(ctx, http.MethodPost, agentPath(username, "stats"), stats, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAgent fetches one agent snapshot. A true 404 is reported as
// ErrAgentNotFound; any other failure propagates unchanged, so callers
// can tell absence from outage.
func (c *Client) GetAgent(ctx context.Context, username string) (*Agent, error) {
	var agent Agent
	err := c.do(ctx, http.MethodGet, agentPath(username, ""), nil, &agent)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	return &agent, nil
}

// UpdateAgent applies a partial update and returns the full updated
// snapshot.
func (c *Client) UpdateAgent(ctx context.Context, username string, updates AgentUpdate) (*Agent, error) {
	var agent Agent
	if err := c.do(ctx, http.MethodPut, agentPath(username, ""), updates, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// Leaderboard fetches a page of the ranked agent list.
func (c *Client) Leaderboard(ctx context.Context, opts LeaderboardOptions) (*LeaderboardPage, error) {
	params := url.Values{}
	if opts.Category != "" {
		params.Set("category", opts.Category)
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		params.Set("offset", strconv.Itoa(opts.Offset))
	}

	path := "/api/leaderboard"
	if query := params.Encode(); query != "" {
		path += "?" + query
	}

	var page LeaderboardPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Search finds agents matching a free-text query.
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	params := url.Values{"q": {query}}

	var resp struct {
		Query  string  `json:"query"`
		Total  int     `json:"total"`
		Agents []Agent `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/search?"+params.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &SearchResult{Query: resp.Query, Total: resp.Total, Agents: resp.Agents}, nil
}

// Categories fetches the category catalogue with agent counts.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var resp struct {
		Categories []Category `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// Claim fetches the verification info needed to claim an agent.
func (c *Client) Claim(ctx context.Context, username string) (*ClaimInfo, error) {
	var resp struct {
		Data ClaimInfo `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, agentPath(username, "claim"), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Operator fetches the profile behind the configured API key.
func (c *Client) Operator(ctx context.Context) (*Operator, error) {
	var resp struct {
		Data Operator `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/operators/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateOperator applies a partial profile update and returns the full
// updated profile.
func (c *Client) UpdateOperator(ctx context.Context, updates OperatorUpdate) (*Operator, error) {
	var resp struct {
		Data Operator `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/operators/me", updates, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
