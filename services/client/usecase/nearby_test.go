package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
)

func TestNearbyTick_SuccessReplacesSnapshot(t *testing.T) {
	// Arrange: authenticated passenger with a known position
	uc, mockGW, _, ctrl := setupClientUCTest(t)
	defer ctrl.Finish()

	uc.mu.Lock()
	uc.state = models.StatePassengerActive
	uc.position = models.GeoPosition{Latitude: 24.7136, Longitude: 46.6753}
	uc.hasPosition = true
	uc.taxis = []models.NearbyTaxi{{ID: "old"}}
	uc.mu.Unlock()

	// Returned out of order; the snapshot must come back nearest first
	mockGW.EXPECT().
		GetNearbyTaxis(gomock.Any(), models.GeoPosition{Latitude: 24.7136, Longitude: 46.6753}).
		Return([]models.NearbyTaxi{
			{ID: "far", Latitude: 24.80, Longitude: 46.75},
			{ID: "near", Latitude: 24.7140, Longitude: 46.6755},
		}, nil)

	// Act
	uc.nearbyTick(context.Background())

	// Assert
	taxis := uc.NearbyTaxis()
	assert.Len(t, taxis, 2)
	assert.Equal(t, "near", taxis[0].ID)
	assert.Equal(t, "far", taxis[1].ID)
	assert.Less(t, taxis[0].DistanceKm, taxis[1].DistanceKm)
}

func TestNearbyTick_FailureKeepsPreviousSnapshot(t *testing.T) {
	// Arrange
	uc, mockGW, _, ctrl := setupClientUCTest(t)
	defer ctrl.Finish()

	uc.mu.Lock()
	uc.state = models.StatePassengerActive
	uc.position = models.GeoPosition{Latitude: 24.7136, Longitude: 46.6753}
	uc.hasPosition = true
	uc.taxis = []models.NearbyTaxi{{ID: "kept", DriverName: "Khalid"}}
	uc.mu.Unlock()

	mockGW.EXPECT().
		GetNearbyTaxis(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	// Act
	uc.nearbyTick(context.Background())

	// Assert: the map never blanks on a transient error
	taxis := uc.NearbyTaxis()
	assert.Len(t, taxis, 1)
	assert.Equal(t, "kept", taxis[0].ID)
}

func TestNearbyTick_StaleEpochDiscarded(t *testing.T) {
	// Arrange
	uc, mockGW, _, ctrl := setupClientUCTest(t)
	defer ctrl.Finish()

	uc.mu.Lock()
	uc.state = models.StatePassengerActive
	uc.position = models.GeoPosition{Latitude: 24.7136, Longitude: 46.6753}
	uc.hasPosition = true
	uc.mu.Unlock()

	// The session changes while the request is in flight
	mockGW.EXPECT().
		GetNearbyTaxis(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, pos models.GeoPosition) ([]models.NearbyTaxi, error) {
			uc.mu.Lock()
			uc.epoch++
			uc.mu.Unlock()
			return []models.NearbyTaxi{{ID: "stale"}}, nil
		})

	// Act
	uc.nearbyTick(context.Background())

	// Assert
	assert.Empty(t, uc.NearbyTaxis())
}

func TestNearbyTick_SkipsWhenAnonymous(t *testing.T) {
	// Arrange: no gateway call is expected
	uc, _, _, ctrl := setupClientUCTest(t)
	defer ctrl.Finish()

	uc.mu.Lock()
	uc.position = models.GeoPosition{Latitude: 24.7136, Longitude: 46.6753}
	uc.hasPosition = true
	uc.mu.Unlock()

	// Act
	uc.nearbyTick(context.Background())

	// Assert
	assert.Empty(t, uc.NearbyTaxis())
}

func TestNearbyTick_SkipsWithoutPosition(t *testing.T) {
	// Arrange
	uc, _, _, ctrl := setupClientUCTest(t)
	defer ctrl.Finish()

	uc.mu.Lock()
	uc.state = models.StatePassengerActive
	uc.mu.Unlock()

	// Act
	uc.nearbyTick(context.Background())

	// Assert
	assert.Empty(t, uc.NearbyTaxis())
}

func TestNearbyLoop_StartsOnLoginWithPosition(t *testing.T) {
	// Arrange
	uc, mockGW, mockRepo, ctrl := setupClientUCTest(t)
	defer ctrl.Finish()

	fetched := make(chan struct{}, 4)
	mockGW.EXPECT().
		GetNearbyTaxis(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, pos models.GeoPosition) ([]models.NearbyTaxi, error) {
			fetched <- struct{}{}
			return []models.NearbyTaxi{{ID: "t-1"}}, nil
		}).
		AnyTimes()
	mockGW.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{AccessToken: "tok", User: passengerProfile()}, nil)
	mockRepo.EXPECT().SaveCredential(gomock.Any(), "tok").Return(nil)
	mockRepo.EXPECT().DeleteCredential(gomock.Any()).Return(nil)

	uc.UpdatePosition(models.GeoPosition{Latitude: 24.7136, Longitude: 46.6753})
	assert.False(t, uc.nearbyLoop.Running(), "anonymous session must not poll")

	// Act
	err := uc.Login(context.Background(), "0512345678", "secret")

	// Assert: the loop starts and its immediate first tick lands
	assert.NoError(t, err)
	assert.True(t, uc.nearbyLoop.Running())
	select {
	case <-fetched:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate nearby poll after login")
	}

	// Logout cancels polling
	uc.Logout()
	assert.False(t, uc.nearbyLoop.Running())

	stopLoops(uc)
}
