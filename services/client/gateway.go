package client

import (
	"context"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/anqasa/smarttaxi/services/client BackendGW

// BackendGW is the REST backend consumed by the client runtime. Authenticated
// calls read the bearer credential from the shared Credential at call time.
type BackendGW interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RegisterPassenger(ctx context.Context, req *models.PassengerRegistration) (*models.AuthResponse, error)
	RegisterDriver(ctx context.Context, req *models.DriverRegistration) (*models.AuthResponse, error)
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	GetCustomerServiceInfo(ctx context.Context) (*models.CustomerServiceInfo, error)
	GetNearbyTaxis(ctx context.Context, pos models.GeoPosition) ([]models.NearbyTaxi, error)
	ReportLocation(ctx context.Context, report *models.LocationReport) error
	SubmitRide(ctx context.Context, submission *models.RideSubmission) error
	MyRides(ctx context.Context) ([]models.Ride, error)
}
