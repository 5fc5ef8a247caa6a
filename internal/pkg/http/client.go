package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client is the HTTP client for communicating with the backend
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new HTTP client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewJSONRequest builds a request against the backend base URL with a JSON
// content type and a fresh request ID for backend-side correlation.
func (c *Client) NewJSONRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}
