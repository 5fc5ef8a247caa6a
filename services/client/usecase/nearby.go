package usecase

import (
	"context"

	"github.com/anqasa/smarttaxi/internal/pkg/logger"
	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/internal/pkg/websocket"
	"github.com/anqasa/smarttaxi/internal/utils"
)

// nearbyTick is one poll of the nearby-taxi snapshot. A successful response
// fully replaces the held list; a failed response keeps the previous snapshot
// so the map never blanks on a transient error.
func (uc *ClientUC) nearbyTick(ctx context.Context) {
	uc.mu.Lock()
	epoch := uc.epoch
	pos, hasPos := uc.position, uc.hasPosition
	authed := uc.state.Authenticated()
	uc.mu.Unlock()

	if !authed || !hasPos {
		return
	}

	taxis, err := uc.gw.GetNearbyTaxis(ctx, pos)
	if err != nil {
		logger.Warn("Nearby taxi poll failed, keeping previous snapshot",
			logger.Err(err))
		return
	}

	utils.AnnotateDistances(taxis, pos)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.epoch != epoch {
		// The session changed while the request was in flight
		logger.Debug("Discarding stale nearby taxi response")
		return
	}
	uc.taxis = taxis
	uc.bcast.Broadcast(websocket.EventTaxis, taxis)

	logger.Debug("Nearby taxi snapshot replaced",
		logger.Int("count", len(taxis)),
		logger.String("geohash", utils.EncodeLocation(pos, 6)))
}

// NearbyTaxis returns the current snapshot, nearest first
func (uc *ClientUC) NearbyTaxis() []models.NearbyTaxi {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]models.NearbyTaxi, len(uc.taxis))
	copy(out, uc.taxis)
	return out
}
