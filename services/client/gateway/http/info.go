package gatewayhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
)

// GetCustomerServiceInfo fetches the customer service reference data
func (g *BackendClient) GetCustomerServiceInfo(ctx context.Context) (*models.CustomerServiceInfo, error) {
	status, body, err := g.do(ctx, http.MethodGet, "/api/customer-service-info", nil, false)
	if err != nil {
		return nil, fmt.Errorf("failed to send customer service info request: %w", err)
	}

	if status != http.StatusOK {
		return nil, fmt.Errorf("customer service info request failed: (status: %d, body: %s)", status, string(body))
	}

	var info models.CustomerServiceInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse customer service info response: %w", err)
	}

	return &info, nil
}
