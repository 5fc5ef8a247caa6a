package gatewayhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	httpclient "github.com/anqasa/smarttaxi/internal/pkg/http"
	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/services/client"
)

// BackendClient is the HTTP client for the ride-hailing REST backend. It
// implements client.BackendGW.
type BackendClient struct {
	client *httpclient.Client
	cred   *client.Credential
}

// NewBackendClient creates a backend HTTP client. Authenticated requests read
// the bearer credential at call time so token rotation propagates
// immediately.
func NewBackendClient(cfg *models.Config, cred *client.Credential) *BackendClient {
	return &BackendClient{
		client: httpclient.NewClient(cfg.Backend.BaseURL, time.Duration(cfg.Backend.Timeout)*time.Second),
		cred:   cred,
	}
}

// do sends one request and returns the status code and response body. When
// authed is true the current bearer credential is attached.
func (g *BackendClient) do(ctx context.Context, method, path string, body interface{}, authed bool) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reqBody, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(reqBody)
	}

	httpReq, err := g.client.NewJSONRequest(ctx, method, path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	if authed {
		if token := g.cred.Get(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := g.client.HTTPClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// errorDetail extracts the human-readable reason from an error response body
func errorDetail(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Message
}
