package pexels

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client handles communication with the Pexels API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
}

// Config holds configuration for the Pexels client
type Config struct {
	APIKey    string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// NewClient creates a new Pexels API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.pexels.com/v1"
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = "PexelsProxy/1.0"
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
	}
}

// Search performs an image search against the Pexels API.
//
// On a 2xx response it returns the upstream JSON body verbatim. A non-2xx
// response yields an *UpstreamError carrying the upstream status and raw
// body; any failure to complete the exchange yields a *TransportError.
// The query is passed through as-is and perPage is not clamped; upstream
// enforces its own limits.
func (c *Client) Search(ctx context.Context, query string, perPage int) (*SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))

	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	// Create a clean context that inherits deadlines but not values/metadata.
	// A client that disconnects early does not cancel the upstream exchange;
	// only the configured timeout bounds it.
	cleanCtx := context.Background()
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		cleanCtx, cancel = context.WithDeadline(cleanCtx, deadline)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(cleanCtx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Pexels expects the raw API key on the Authorization header
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: body}
	}

	return &SearchResult{StatusCode: resp.StatusCode, Body: body}, nil
}
