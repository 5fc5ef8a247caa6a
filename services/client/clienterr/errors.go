package clienterr

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired means the persisted credential was rejected during
	// restore. Recovered silently: the session resets to anonymous.
	ErrSessionExpired = errors.New("session expired")

	// ErrActivationExpired means the backend returned 403 on a location
	// report: the driver's activation lapsed. Not fatal to the loop.
	ErrActivationExpired = errors.New("driver activation expired")

	// ErrNotAuthenticated means an operation required a session
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoPosition means the current device position is unknown
	ErrNoPosition = errors.New("current position unknown")
)

// AuthError means the backend rejected the login credentials. Surfaced to the
// user; the session stays anonymous.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "invalid phone number or password"
	}
	return e.Message
}

// RegistrationError means the backend rejected an account registration. It
// carries the server-supplied reason when one was returned.
type RegistrationError struct {
	Message string
}

func (e *RegistrationError) Error() string {
	if e.Message == "" {
		return "registration failed"
	}
	return e.Message
}

// ValidationError is a client-side fast-fail before submission
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
