package gatewayhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/services/client/clienterr"
)

// Login exchanges credentials for a bearer token and profile
func (g *BackendClient) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	status, body, err := g.do(ctx, http.MethodPost, "/api/login", req, false)
	if err != nil {
		return nil, fmt.Errorf("failed to send login request: %w", err)
	}

	if status == http.StatusUnauthorized {
		return nil, &clienterr.AuthError{Message: errorDetail(body)}
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("login request failed: (status: %d, body: %s)", status, string(body))
	}

	var response models.AuthResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse login response: %w", err)
	}
	if response.AccessToken == "" || response.User == nil {
		return nil, fmt.Errorf("login response missing access token or user")
	}

	return &response, nil
}

// RegisterPassenger provisions a passenger account
func (g *BackendClient) RegisterPassenger(ctx context.Context, req *models.PassengerRegistration) (*models.AuthResponse, error) {
	return g.register(ctx, "/api/register/passenger", req)
}

// RegisterDriver provisions a driver account
func (g *BackendClient) RegisterDriver(ctx context.Context, req *models.DriverRegistration) (*models.AuthResponse, error) {
	return g.register(ctx, "/api/register/driver", req)
}

func (g *BackendClient) register(ctx context.Context, path string, req interface{}) (*models.AuthResponse, error) {
	status, body, err := g.do(ctx, http.MethodPost, path, req, false)
	if err != nil {
		return nil, fmt.Errorf("failed to send registration request: %w", err)
	}

	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		// Validation or conflict; carry the server-supplied reason when present
		return nil, &clienterr.RegistrationError{Message: errorDetail(body)}
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, fmt.Errorf("registration request failed: (status: %d, body: %s)", status, string(body))
	}

	var response models.AuthResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse registration response: %w", err)
	}
	if response.AccessToken == "" || response.User == nil {
		return nil, fmt.Errorf("registration response missing access token or user")
	}

	return &response, nil
}

// GetProfile fetches the authenticated user's profile
func (g *BackendClient) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	status, body, err := g.do(ctx, http.MethodGet, "/api/me", nil, true)
	if err != nil {
		return nil, fmt.Errorf("failed to send profile request: %w", err)
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, clienterr.ErrSessionExpired
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("profile request failed: (status: %d, body: %s)", status, string(body))
	}

	var profile models.UserProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile response: %w", err)
	}

	return &profile, nil
}
