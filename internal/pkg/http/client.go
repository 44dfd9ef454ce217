package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/ncastellanos/flotilla/internal/pkg/logger"
)

const (
	// DefaultTimeout for requests against the fleet server
	DefaultTimeout = 10 * time.Second

	apiKeyHeader = "X-API-Key"
)

// APIClient is a JSON client for the fleet server's HTTP surface. It
// authenticates with either a bearer token (interactive accounts) or an
// API key (internal consumers such as display walls). When both are set
// the bearer token wins.
type APIClient struct {
	client  *nethttp.Client
	baseURL string
	token   string
	apiKey  string
}

// NewAPIClient creates a client rooted at the server base URL
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &APIClient{
		client:  &nethttp.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// WithBearerToken sets the JWT sent on every request
func (c *APIClient) WithBearerToken(token string) *APIClient {
	c.token = token
	return c
}

// WithAPIKey sets the API key sent on every request
func (c *APIClient) WithAPIKey(key string) *APIClient {
	c.apiKey = key
	return c
}

// GetJSON performs a GET and decodes the JSON body into result
func (c *APIClient) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodGet, endpoint, nil, result)
}

// PostJSON performs a POST with a JSON body and decodes the response
func (c *APIClient) PostJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPost, endpoint, body, result)
}

func (c *APIClient) doJSON(ctx context.Context, method, endpoint string, body, result interface{}) error {
	url := c.baseURL + endpoint

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	switch {
	case c.token != "":
		req.Header.Set("Authorization", "Bearer "+c.token)
	case c.apiKey != "":
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warn("Fleet server request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
