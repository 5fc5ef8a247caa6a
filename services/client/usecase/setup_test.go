package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/services/client"
	"github.com/anqasa/smarttaxi/services/client/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Tracker: models.TrackerConfig{
			DefaultLatitude:  24.7136,
			DefaultLongitude: 46.6753,
		},
		Poll: models.PollConfig{
			// Long intervals: tests drive ticks directly, the immediate
			// first tick on Start is the only scheduled one that runs
			NearbyIntervalSec:   3600,
			ReportIntervalSec:   3600,
			NotificationTTLSec:  1,
			InfoRetryMaxRetries: 0,
		},
	}
}

func setupClientUCTest(t *testing.T) (*ClientUC, *mocks.MockBackendGW, *mocks.MockStateRepo, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockGW := mocks.NewMockBackendGW(ctrl)
	mockRepo := mocks.NewMockStateRepo(ctrl)
	mockBcast := mocks.NewMockBroadcaster(ctrl)
	mockBcast.EXPECT().Broadcast(gomock.Any(), gomock.Any()).AnyTimes()

	uc := NewClientUC(testConfig(), &client.Credential{}, mockGW, mockRepo, mockBcast)

	return uc, mockGW, mockRepo, ctrl
}

// stopLoops shuts the polling loops down and gives any in-flight tick a
// moment to drain before the mock controller verifies expectations.
func stopLoops(uc *ClientUC) {
	uc.Close()
	time.Sleep(20 * time.Millisecond)
}

func passengerProfile() *models.UserProfile {
	return &models.UserProfile{
		ID:    "u-1",
		Phone: "0512345678",
		Name:  "Sara",
		Role:  models.RolePassenger,
	}
}

func driverProfile(activated bool) *models.UserProfile {
	return &models.UserProfile{
		ID:                    "d-1",
		Phone:                 "0587654321",
		Name:                  "Khalid",
		Role:                  models.RoleDriver,
		CarRegistrationNumber: "TX-1042",
		OperatingNumber:       "OP-77",
		IsActivated:           activated,
	}
}
