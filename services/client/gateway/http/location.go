package gatewayhttp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/services/client/clienterr"
)

// ReportLocation sends the driver's current position to the backend. A 403
// specifically signals that the driver's activation has expired.
func (g *BackendClient) ReportLocation(ctx context.Context, report *models.LocationReport) error {
	status, body, err := g.do(ctx, http.MethodPost, "/api/driver/location", report, true)
	if err != nil {
		return fmt.Errorf("failed to send location report: %w", err)
	}

	if status == http.StatusForbidden {
		return clienterr.ErrActivationExpired
	}
	if status != http.StatusOK {
		return fmt.Errorf("location report failed: (status: %d, body: %s)", status, string(body))
	}

	return nil
}
