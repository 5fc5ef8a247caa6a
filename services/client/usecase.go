package client

import (
	"context"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/anqasa/smarttaxi/services/client ClientUC

// ClientUC is the client runtime core consumed by the UI bridge
type ClientUC interface {
	// session lifecycle
	Restore(ctx context.Context) error
	Login(ctx context.Context, phone, password string) error
	RegisterPassenger(ctx context.Context, req *models.PassengerRegistration) error
	RegisterDriver(ctx context.Context, req *models.DriverRegistration) error
	RefreshProfile(ctx context.Context) error
	Logout()

	// read-only state for the UI layer
	Session() models.SessionSnapshot
	State() models.SessionState

	// geolocation
	CurrentPosition() (models.GeoPosition, bool)
	UpdatePosition(pos models.GeoPosition)

	// nearby taxi snapshot
	NearbyTaxis() []models.NearbyTaxi

	// ride requests
	SubmitRide(ctx context.Context, form *models.RideForm) error
	RideHistory(ctx context.Context) ([]models.Ride, error)

	// notifications
	Notification() *models.Notification
	DismissNotification()

	// reference data
	CustomerService() *models.CustomerServiceInfo

	Close()
}
