package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/services/client/clienterr"
)

func authenticatePassenger(uc *ClientUC, withPosition bool) {
	uc.mu.Lock()
	uc.state = models.StatePassengerActive
	uc.profile = passengerProfile()
	if withPosition {
		uc.position = models.GeoPosition{Latitude: 24.7136, Longitude: 46.6753}
		uc.hasPosition = true
	}
	uc.mu.Unlock()
}

func TestSubmitRide_Validation(t *testing.T) {
	testCases := []struct {
		name       string
		setup      func(uc *ClientUC)
		form       models.RideForm
		assertFunc func(t *testing.T, err error)
	}{
		{
			name:  "Not Authenticated",
			setup: func(uc *ClientUC) {},
			form: models.RideForm{
				DestinationAddress: "King Fahd Road",
				PassengerCount:     "2",
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, clienterr.ErrNotAuthenticated)
			},
		},
		{
			name:  "Missing Destination",
			setup: func(uc *ClientUC) { authenticatePassenger(uc, true) },
			form: models.RideForm{
				DestinationAddress: "   ",
				PassengerCount:     "2",
			},
			assertFunc: func(t *testing.T, err error) {
				var valErr *clienterr.ValidationError
				assert.ErrorAs(t, err, &valErr)
				assert.Equal(t, "destination_address", valErr.Field)
			},
		},
		{
			name:  "Non-Numeric Passenger Count",
			setup: func(uc *ClientUC) { authenticatePassenger(uc, true) },
			form: models.RideForm{
				DestinationAddress: "King Fahd Road",
				PassengerCount:     "two",
			},
			assertFunc: func(t *testing.T, err error) {
				var valErr *clienterr.ValidationError
				assert.ErrorAs(t, err, &valErr)
				assert.Equal(t, "passenger_count", valErr.Field)
			},
		},
		{
			name:  "Passenger Count Below Minimum",
			setup: func(uc *ClientUC) { authenticatePassenger(uc, true) },
			form: models.RideForm{
				DestinationAddress: "King Fahd Road",
				PassengerCount:     "0",
			},
			assertFunc: func(t *testing.T, err error) {
				var valErr *clienterr.ValidationError
				assert.ErrorAs(t, err, &valErr)
				assert.Equal(t, "passenger_count", valErr.Field)
			},
		},
		{
			name:  "Passenger Count Above Maximum",
			setup: func(uc *ClientUC) { authenticatePassenger(uc, true) },
			form: models.RideForm{
				DestinationAddress: "King Fahd Road",
				PassengerCount:     "5",
			},
			assertFunc: func(t *testing.T, err error) {
				var valErr *clienterr.ValidationError
				assert.ErrorAs(t, err, &valErr)
				assert.Equal(t, "passenger_count", valErr.Field)
			},
		},
		{
			name:  "No Known Position",
			setup: func(uc *ClientUC) { authenticatePassenger(uc, false) },
			form: models.RideForm{
				DestinationAddress: "King Fahd Road",
				PassengerCount:     "2",
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, clienterr.ErrNoPosition)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup: no gateway call is expected for rejected forms
			uc, _, _, ctrl := setupClientUCTest(t)
			defer ctrl.Finish()
			tc.setup(uc)

			// Execute
			err := uc.SubmitRide(context.Background(), &tc.form)

			// Assert
			tc.assertFunc(t, err)
		})
	}
}

func TestSubmitRide_EmptyPickupUsesCurrentLocation(t *testing.T) {
	// Arrange
	uc, mockGW, _, ctrl := setupClientUCTest(t)
	defer ctrl.Finish()
	authenticatePassenger(uc, true)

	mockGW.EXPECT().
		SubmitRide(gomock.Any(), &models.RideSubmission{
			PickupLatitude:     24.7136,
			PickupLongitude:    46.6753,
			PickupAddress:      models.PickupAddressFallback,
			DestinationAddress: "King Fahd Road",
			PassengerCount:     3,
			HasLuggage:         true,
		}).
		Return(nil)

	// Act
	form := &models.RideForm{
		PickupAddress:      "  ",
		DestinationAddress: "King Fahd Road",
		PassengerCount:     "3",
		HasLuggage:         true,
	}
	err := uc.SubmitRide(context.Background(), form)

	// Assert
	assert.NoError(t, err)
	// The fallback is applied to the submission, never written back: the
	// user's form keeps what they typed
	assert.Equal(t, "  ", form.PickupAddress)

	notif := uc.Notification()
	assert.NotNil(t, notif)
	assert.Equal(t, models.NotificationSuccess, notif.Kind)
}

func TestSubmitRide_ExplicitPickupPreserved(t *testing.T) {
	// Arrange
	uc, mockGW, _, ctrl := setupClientUCTest(t)
	defer ctrl.Finish()
	authenticatePassenger(uc, true)

	mockGW.EXPECT().
		SubmitRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, sub *models.RideSubmission) error {
			assert.Equal(t, "Olaya Street 12", sub.PickupAddress)
			return nil
		})

	// Act
	err := uc.SubmitRide(context.Background(), &models.RideForm{
		PickupAddress:      "Olaya Street 12",
		DestinationAddress: "King Fahd Road",
		PassengerCount:     "1",
	})

	// Assert
	assert.NoError(t, err)
}

func TestSubmitRide_BackendFailure(t *testing.T) {
	// Arrange
	uc, mockGW, _, ctrl := setupClientUCTest(t)
	defer ctrl.Finish()
	authenticatePassenger(uc, true)

	mockGW.EXPECT().
		SubmitRide(gomock.Any(), gomock.Any()).
		Return(errors.New("service unavailable"))

	// Act
	err := uc.SubmitRide(context.Background(), &models.RideForm{
		DestinationAddress: "King Fahd Road",
		PassengerCount:     "2",
	})

	// Assert
	assert.Error(t, err)

	notif := uc.Notification()
	assert.NotNil(t, notif)
	assert.Equal(t, models.NotificationError, notif.Kind)
}

func TestRideHistory(t *testing.T) {
	// Arrange
	uc, mockGW, _, ctrl := setupClientUCTest(t)
	defer ctrl.Finish()
	authenticatePassenger(uc, false)

	rides := []models.Ride{
		{ID: "r-1", Status: "completed"},
		{ID: "r-2", Status: "pending"},
	}
	mockGW.EXPECT().MyRides(gomock.Any()).Return(rides, nil)

	// Act
	got, err := uc.RideHistory(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, rides, got)
}

func TestRideHistory_NotAuthenticated(t *testing.T) {
	// Arrange
	uc, _, _, ctrl := setupClientUCTest(t)
	defer ctrl.Finish()

	// Act
	_, err := uc.RideHistory(context.Background())

	// Assert
	assert.ErrorIs(t, err, clienterr.ErrNotAuthenticated)
}
