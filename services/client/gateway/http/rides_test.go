package gatewayhttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/services/client/clienterr"
)

func TestSubmitRide(t *testing.T) {
	tests := []struct {
		name           string
		mockStatusCode int
		expectError    bool
	}{
		{
			name:           "created",
			mockStatusCode: http.StatusCreated,
			expectError:    false,
		},
		{
			name:           "accepted with ok",
			mockStatusCode: http.StatusOK,
			expectError:    false,
		},
		{
			name:           "server error",
			mockStatusCode: http.StatusInternalServerError,
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/rides/request", r.URL.Path)
				assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

				var sub models.RideSubmission
				require.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
				assert.Equal(t, "current location", sub.PickupAddress)
				assert.Equal(t, 2, sub.PassengerCount)

				w.WriteHeader(tt.mockStatusCode)
				json.NewEncoder(w).Encode(map[string]string{"id": "r-1"})
			}))
			defer server.Close()

			gw := newTestGateway(server.URL, "tok-123")
			err := gw.SubmitRide(context.Background(), &models.RideSubmission{
				PickupLatitude:     24.7136,
				PickupLongitude:    46.6753,
				PickupAddress:      "current location",
				DestinationAddress: "King Fahd Road",
				PassengerCount:     2,
			})

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMyRides(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/rides/my-rides", r.URL.Path)

		json.NewEncoder(w).Encode([]models.Ride{
			{ID: "r-1", Status: "completed", PickupAddress: "Olaya Street"},
			{ID: "r-2", Status: "pending", PickupAddress: "current location"},
		})
	}))
	defer server.Close()

	gw := newTestGateway(server.URL, "tok-123")
	rides, err := gw.MyRides(context.Background())

	assert.NoError(t, err)
	require.Len(t, rides, 2)
	assert.Equal(t, "r-1", rides[0].ID)
	assert.Equal(t, "pending", rides[1].Status)
}

func TestRegisterPassenger(t *testing.T) {
	tests := []struct {
		name           string
		mockStatusCode int
		mockBody       interface{}
		assertFunc     func(t *testing.T, resp *models.AuthResponse, err error)
	}{
		{
			name:           "successful registration",
			mockStatusCode: http.StatusCreated,
			mockBody: models.AuthResponse{
				AccessToken: "tok-new",
				User:        &models.UserProfile{ID: "u-9", Role: models.RolePassenger},
			},
			assertFunc: func(t *testing.T, resp *models.AuthResponse, err error) {
				assert.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, "tok-new", resp.AccessToken)
			},
		},
		{
			name:           "phone already registered",
			mockStatusCode: http.StatusConflict,
			mockBody:       map[string]string{"detail": "phone number already registered"},
			assertFunc: func(t *testing.T, resp *models.AuthResponse, err error) {
				assert.Nil(t, resp)
				var regErr *clienterr.RegistrationError
				assert.ErrorAs(t, err, &regErr)
				assert.Equal(t, "phone number already registered", regErr.Message)
			},
		},
		{
			name:           "validation rejection",
			mockStatusCode: http.StatusUnprocessableEntity,
			mockBody:       map[string]string{"detail": "age must be positive"},
			assertFunc: func(t *testing.T, resp *models.AuthResponse, err error) {
				assert.Nil(t, resp)
				var regErr *clienterr.RegistrationError
				assert.ErrorAs(t, err, &regErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/register/passenger", r.URL.Path)

				w.WriteHeader(tt.mockStatusCode)
				json.NewEncoder(w).Encode(tt.mockBody)
			}))
			defer server.Close()

			gw := newTestGateway(server.URL, "")
			resp, err := gw.RegisterPassenger(context.Background(), &models.PassengerRegistration{
				Phone:    "0512345678",
				Name:     "Sara",
				Age:      28,
				Password: "secret",
			})

			tt.assertFunc(t, resp, err)
		})
	}
}

func TestGetCustomerServiceInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/customer-service-info", r.URL.Path)

		json.NewEncoder(w).Encode(models.CustomerServiceInfo{
			Phone:   "0500000000",
			Message: "We are here to help",
		})
	}))
	defer server.Close()

	gw := newTestGateway(server.URL, "")
	info, err := gw.GetCustomerServiceInfo(context.Background())

	assert.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "0500000000", info.Phone)
}
