package gatewayhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
)

// SubmitRide sends a passenger ride request. Fire-and-forget: the response
// acknowledges creation only.
func (g *BackendClient) SubmitRide(ctx context.Context, submission *models.RideSubmission) error {
	status, body, err := g.do(ctx, http.MethodPost, "/api/rides/request", submission, true)
	if err != nil {
		return fmt.Errorf("failed to send ride request: %w", err)
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("ride request failed: (status: %d, body: %s)", status, string(body))
	}

	return nil
}

// MyRides fetches the authenticated user's ride history
func (g *BackendClient) MyRides(ctx context.Context) ([]models.Ride, error) {
	status, body, err := g.do(ctx, http.MethodGet, "/api/rides/my-rides", nil, true)
	if err != nil {
		return nil, fmt.Errorf("failed to send ride history request: %w", err)
	}

	if status != http.StatusOK {
		return nil, fmt.Errorf("ride history request failed: (status: %d, body: %s)", status, string(body))
	}

	var rides []models.Ride
	if err := json.Unmarshal(body, &rides); err != nil {
		return nil, fmt.Errorf("failed to parse ride history response: %w", err)
	}

	return rides, nil
}
