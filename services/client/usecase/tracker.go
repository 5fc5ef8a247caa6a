package usecase

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/anqasa/smarttaxi/internal/pkg/logger"
	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/internal/pkg/websocket"
	"github.com/anqasa/smarttaxi/internal/utils"
	"github.com/anqasa/smarttaxi/services/client"
)

// PrimePosition obtains a one-shot device position at startup. On provider
// failure the configured fallback coordinate is used as a last resort; it is
// never retried. Later positions arrive through UpdatePosition.
func (uc *ClientUC) PrimePosition(ctx context.Context, provider client.PositionProvider) {
	pos, err := provider.CurrentPosition(ctx)
	if err != nil {
		pos = models.GeoPosition{
			Latitude:  uc.cfg.Tracker.DefaultLatitude,
			Longitude: uc.cfg.Tracker.DefaultLongitude,
		}
		logger.Warn("Device position unavailable, using fallback coordinate",
			logger.Err(err),
			logger.Float64("latitude", pos.Latitude),
			logger.Float64("longitude", pos.Longitude))
	}
	uc.UpdatePosition(pos)
}

// UpdatePosition replaces the current position, latest wins. A position
// becoming known can satisfy a loop's activation predicate, so the loops are
// re-synced.
func (uc *ClientUC) UpdatePosition(pos models.GeoPosition) {
	uc.mu.Lock()
	uc.position = pos
	uc.hasPosition = true
	uc.syncLoopsLocked()
	uc.mu.Unlock()

	logger.Debug("Position updated",
		logger.String("geohash", utils.EncodeLocation(pos, 7)))

	uc.bcast.Broadcast(websocket.EventPosition, pos)
}

// CurrentPosition returns the most recent position and whether one is known
func (uc *ClientUC) CurrentPosition() (models.GeoPosition, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.position, uc.hasPosition
}

// EnvPositionProvider reads the device position handed to the process by the
// host environment. Absence means the platform denied or lacks geolocation.
type EnvPositionProvider struct{}

// CurrentPosition implements client.PositionProvider
func (EnvPositionProvider) CurrentPosition(ctx context.Context) (models.GeoPosition, error) {
	latStr, latOK := os.LookupEnv("DEVICE_LATITUDE")
	lngStr, lngOK := os.LookupEnv("DEVICE_LONGITUDE")
	if !latOK || !lngOK {
		return models.GeoPosition{}, fmt.Errorf("no device position in environment")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return models.GeoPosition{}, fmt.Errorf("invalid DEVICE_LATITUDE: %w", err)
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return models.GeoPosition{}, fmt.Errorf("invalid DEVICE_LONGITUDE: %w", err)
	}

	return models.GeoPosition{Latitude: lat, Longitude: lng}, nil
}
