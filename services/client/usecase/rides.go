package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/anqasa/smarttaxi/internal/pkg/logger"
	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/services/client/clienterr"
)

// SubmitRide validates and submits a passenger ride request using the current
// position as pickup coordinates. Fire-and-forget: the outcome of the ride is
// delivered out of band, not tracked here. On failure the caller keeps the
// form contents so the user can retry without re-entering them.
func (uc *ClientUC) SubmitRide(ctx context.Context, form *models.RideForm) error {
	submission, err := uc.buildSubmission(form)
	if err != nil {
		return err
	}

	if err := uc.gw.SubmitRide(ctx, submission); err != nil {
		logger.Warn("Ride request failed", logger.Err(err))
		uc.notifier.Post(models.NotificationError,
			"could not submit your ride request, please try again")
		return err
	}

	uc.notifier.Post(models.NotificationSuccess,
		"ride requested, a driver will be assigned shortly")
	return nil
}

// buildSubmission applies client-side validation and the pickup address
// fallback. The empty pickup address is resolved to the current-location
// sentinel exactly once, here.
func (uc *ClientUC) buildSubmission(form *models.RideForm) (*models.RideSubmission, error) {
	if !uc.State().Authenticated() {
		return nil, clienterr.ErrNotAuthenticated
	}

	destination := strings.TrimSpace(form.DestinationAddress)
	if destination == "" {
		return nil, &clienterr.ValidationError{
			Field:  "destination_address",
			Reason: "destination is required",
		}
	}

	count, err := strconv.Atoi(strings.TrimSpace(form.PassengerCount))
	if err != nil {
		return nil, &clienterr.ValidationError{
			Field:  "passenger_count",
			Reason: "must be a number",
		}
	}
	if count < models.MinPassengerCount || count > models.MaxPassengerCount {
		return nil, &clienterr.ValidationError{
			Field:  "passenger_count",
			Reason: "must be between 1 and 4",
		}
	}

	pos, ok := uc.CurrentPosition()
	if !ok {
		return nil, clienterr.ErrNoPosition
	}

	pickup := strings.TrimSpace(form.PickupAddress)
	if pickup == "" {
		pickup = models.PickupAddressFallback
	}

	return &models.RideSubmission{
		PickupLatitude:     pos.Latitude,
		PickupLongitude:    pos.Longitude,
		PickupAddress:      pickup,
		DestinationAddress: destination,
		PassengerCount:     count,
		HasLuggage:         form.HasLuggage,
	}, nil
}

// RideHistory is a read-through to the backend ride history endpoint
func (uc *ClientUC) RideHistory(ctx context.Context) ([]models.Ride, error) {
	if !uc.State().Authenticated() {
		return nil, clienterr.ErrNotAuthenticated
	}
	return uc.gw.MyRides(ctx)
}
