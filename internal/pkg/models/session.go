package models

// SessionState is the role/activation state that gates which loops may run
type SessionState string

const (
	// StateAnonymous means no credential is held
	StateAnonymous SessionState = "anonymous"
	// StateAuthenticating means a login or registration is in flight
	StateAuthenticating SessionState = "authenticating"
	// StatePassengerActive means an authenticated passenger session
	StatePassengerActive SessionState = "passenger_active"
	// StateDriverPendingActivation means an authenticated driver whose
	// activation is missing or lapsed
	StateDriverPendingActivation SessionState = "driver_pending_activation"
	// StateDriverActive means an authenticated, activated driver
	StateDriverActive SessionState = "driver_active"
)

// Authenticated reports whether the state represents a logged-in session
func (s SessionState) Authenticated() bool {
	switch s {
	case StatePassengerActive, StateDriverPendingActivation, StateDriverActive:
		return true
	}
	return false
}

// SessionSnapshot is the read-only session view exposed to the UI layer
type SessionSnapshot struct {
	State   SessionState `json:"state"`
	Profile *UserProfile `json:"profile,omitempty"`
}
