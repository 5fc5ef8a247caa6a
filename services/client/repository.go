package client

import (
	"context"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/anqasa/smarttaxi/services/client StateRepo

// StateRepo is the client-local durable store. It persists the bearer
// credential across process starts and caches reference data.
type StateRepo interface {
	GetCredential(ctx context.Context) (string, error)
	SaveCredential(ctx context.Context, token string) error
	DeleteCredential(ctx context.Context) error

	GetCustomerServiceInfo(ctx context.Context) (*models.CustomerServiceInfo, error)
	SaveCustomerServiceInfo(ctx context.Context, info *models.CustomerServiceInfo) error

	Close() error
}
