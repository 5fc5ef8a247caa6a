package usecase

import (
	"github.com/anqasa/smarttaxi/internal/pkg/logger"
	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/internal/pkg/websocket"
)

// State returns the current role/activation state
func (uc *ClientUC) State() models.SessionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// Session returns the read-only session view for the UI layer
func (uc *ClientUC) Session() models.SessionSnapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return models.SessionSnapshot{
		State:   uc.state,
		Profile: uc.profile,
	}
}

// stateForProfile derives the post-authentication state from a profile
func stateForProfile(profile *models.UserProfile) models.SessionState {
	if profile.IsDriver() {
		if profile.IsActivated {
			return models.StateDriverActive
		}
		return models.StateDriverPendingActivation
	}
	return models.StatePassengerActive
}

// setStateLocked transitions the state machine. Callers hold uc.mu.
func (uc *ClientUC) setStateLocked(next models.SessionState) {
	if uc.state == next {
		return
	}

	prev := uc.state
	uc.state = next

	logger.Info("Session state changed",
		logger.String("from", string(prev)),
		logger.String("to", string(next)))

	uc.bcast.Broadcast(websocket.EventState, models.SessionSnapshot{
		State:   uc.state,
		Profile: uc.profile,
	})
}

// syncLoopsLocked starts and stops the polling loops according to the
// activation predicates. The state machine is the single authority for what
// may run; this is invoked on every transition edge and on position changes.
// Callers hold uc.mu; the loops tick on their own goroutines so starting one
// here cannot deadlock.
func (uc *ClientUC) syncLoopsLocked() {
	// Nearby taxis: any authenticated session with a known position.
	if uc.state.Authenticated() && uc.hasPosition {
		uc.nearbyLoop.Start(uc.nearbyTick)
	} else {
		uc.nearbyLoop.Stop()
	}

	// Location reporting starts for an activated driver with a known
	// position. An activation lapse observed mid-session (403) keeps the
	// loop ticking: the send predicate in reportTick blocks it until
	// reactivation is observed. Only logout or a role change cancel it.
	switch {
	case uc.state == models.StateDriverActive && uc.hasPosition:
		uc.reportLoop.Start(uc.reportTick)
	case uc.state == models.StateDriverPendingActivation:
		// keep the loop as-is: running if the activation lapsed mid-session,
		// never started if the driver logged in unactivated
	default:
		uc.reportLoop.Stop()
	}
}
