package usecase

import (
	"context"
	"errors"

	"github.com/anqasa/smarttaxi/internal/pkg/logger"
	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/services/client/clienterr"
)

// reportTick is one driver position report. A 403 means the activation
// lapsed: that is a business-state change, not a fatal client error, so the
// loop keeps ticking while the send predicate blocks further reports until
// reactivation is observed through a profile refresh.
func (uc *ClientUC) reportTick(ctx context.Context) {
	uc.mu.Lock()
	epoch := uc.epoch
	pos, hasPos := uc.position, uc.hasPosition
	active := uc.state == models.StateDriverActive
	uc.mu.Unlock()

	if !active || !hasPos {
		return
	}

	err := uc.gw.ReportLocation(ctx, &models.LocationReport{
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
	})
	if err == nil {
		logger.Debug("Driver position reported",
			logger.Float64("latitude", pos.Latitude),
			logger.Float64("longitude", pos.Longitude))
		return
	}

	if errors.Is(err, clienterr.ErrActivationExpired) {
		uc.mu.Lock()
		// A 403 that raced a logout or re-login belongs to the old
		// session; discard it entirely, notification included
		current := uc.epoch == epoch && uc.state == models.StateDriverActive
		if current {
			if uc.profile != nil {
				uc.profile.IsActivated = false
			}
			uc.setStateLocked(models.StateDriverPendingActivation)
			uc.syncLoopsLocked()
		}
		uc.mu.Unlock()

		if current {
			uc.notifier.Post(models.NotificationError,
				"your driver activation has expired, please renew your activation code")
		}
		return
	}

	// Transient failure; the next scheduled tick is the retry
	logger.Warn("Location report failed", logger.Err(err))
}
