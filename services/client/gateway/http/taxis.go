package gatewayhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
)

// GetNearbyTaxis fetches the nearby-taxi snapshot around the given position
func (g *BackendClient) GetNearbyTaxis(ctx context.Context, pos models.GeoPosition) ([]models.NearbyTaxi, error) {
	path := "/api/taxis/nearby?lat=" + strconv.FormatFloat(pos.Latitude, 'f', -1, 64) +
		"&lng=" + strconv.FormatFloat(pos.Longitude, 'f', -1, 64)

	status, body, err := g.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, fmt.Errorf("failed to send nearby taxis request: %w", err)
	}

	if status != http.StatusOK {
		return nil, fmt.Errorf("nearby taxis request failed: (status: %d, body: %s)", status, string(body))
	}

	var taxis []models.NearbyTaxi
	if err := json.Unmarshal(body, &taxis); err != nil {
		return nil, fmt.Errorf("failed to parse nearby taxis response: %w", err)
	}

	return taxis, nil
}
