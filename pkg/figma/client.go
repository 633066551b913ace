package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

const defaultAPIBase = "https://api.figma.com/v1"

// Client is a Figma REST API client with HTTP settings tuned for large design
// files: connection pooling, disabled HTTP/2 (stream errors on big responses),
// and a generous timeout.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Figma API base URL. Used by tests to point the
// client at a local server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new Figma API client with the provided personal access token.
func NewClient(accessToken string, opts ...Option) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files.
		ForceAttemptHTTP2: false,
	}

	c := &Client{
		accessToken: accessToken,
		baseURL:     defaultAPIBase,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g. figma.com/file/ABC123/Design-Name).
// Anchored to ensure the entire URL matches the expected pattern.
func ExtractFileKey(figmaURL string) (string, error) {
	re := regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|\?|$)`)
	matches := re.FindStringSubmatch(figmaURL)

	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}

	return matches[1], nil
}

// GetFile retrieves the complete file data: document tree, published style map,
// variable collection, and metadata.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*FileResponse, error) {
	var fileResp FileResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/files/%s", c.baseURL, fileKey), &fileResp); err != nil {
		return nil, fmt.Errorf("fetch file %s: %w", fileKey, err)
	}
	return &fileResp, nil
}

// GetFileStyles retrieves the metadata of all published styles (fills, text,
// effects, grids) in a Figma file.
func (c *Client) GetFileStyles(ctx context.Context, fileKey string) (*StylesResponse, error) {
	var stylesResp StylesResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/files/%s/styles", c.baseURL, fileKey), &stylesResp); err != nil {
		return nil, fmt.Errorf("fetch styles for %s: %w", fileKey, err)
	}
	return &stylesResp, nil
}

const maxRetries = 3

// getJSON performs an authenticated GET and decodes the JSON response into v.
// Retries up to maxRetries times with linear backoff on network errors, rate
// limits (429), and server errors (5xx).
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("X-Figma-Token", c.accessToken)
		req.Header.Set("Connection", "close")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: execute request: %w", attempt, err)
			if attempt < maxRetries && ctx.Err() == nil {
				time.Sleep(backoff(attempt))
				continue
			}
			return lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
			if attempt < maxRetries && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500) {
				time.Sleep(backoff(attempt))
				continue
			}
			return lastErr
		}

		if readErr != nil {
			lastErr = fmt.Errorf("attempt %d: read response body: %w", attempt, readErr)
			if attempt < maxRetries {
				time.Sleep(backoff(attempt))
				continue
			}
			return lastErr
		}

		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
		return nil
	}

	return lastErr
}

// backoff is a variable so tests can avoid real sleeps.
var backoff = func(attempt int) time.Duration {
	return time.Duration(attempt) * 2 * time.Second
}
