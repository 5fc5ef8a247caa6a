package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/anqasa/smarttaxi/internal/pkg/logger"
	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/internal/utils"
	"github.com/anqasa/smarttaxi/services/client/clienterr"
)

// Restore attaches a persisted credential, if any, and verifies it against
// the backend. A rejected credential is routine expiry: it is discarded and
// the session stays anonymous with no user-facing notification.
func (uc *ClientUC) Restore(ctx context.Context) error {
	token, err := uc.repo.GetCredential(ctx)
	if err != nil {
		return fmt.Errorf("failed to read persisted credential: %w", err)
	}
	if token == "" {
		return nil
	}

	uc.cred.Set(token)

	profile, err := uc.gw.GetProfile(ctx)
	if err != nil {
		// Silent reset; this is not an error condition for the user
		logger.Info("Persisted credential rejected, resetting to anonymous",
			logger.Err(err))
		uc.cred.Clear()
		if delErr := uc.repo.DeleteCredential(ctx); delErr != nil {
			logger.Warn("Failed to clear persisted credential", logger.Err(delErr))
		}
		return nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.epoch++
	uc.profile = profile
	uc.setStateLocked(stateForProfile(profile))
	uc.syncLoopsLocked()

	logger.Info("Session restored",
		logger.String("user_id", profile.ID),
		logger.String("role", profile.Role))
	return nil
}

// Login exchanges credentials for a bearer token and profile
func (uc *ClientUC) Login(ctx context.Context, phone, password string) error {
	uc.mu.Lock()
	uc.setStateLocked(models.StateAuthenticating)
	uc.mu.Unlock()

	resp, err := uc.gw.Login(ctx, &models.LoginRequest{
		Phone:    utils.NormalizePhone(phone),
		Password: password,
	})
	if err != nil {
		uc.abortAuthentication()
		var authErr *clienterr.AuthError
		if errors.As(err, &authErr) {
			uc.notifier.Post(models.NotificationError, authErr.Error())
		} else {
			uc.notifier.Post(models.NotificationError, "login failed, please try again")
		}
		return err
	}

	uc.establishSession(ctx, resp)

	logger.Info("Login succeeded",
		logger.String("phone", utils.MaskPhone(phone)),
		logger.String("role", resp.User.Role))
	return nil
}

// RegisterPassenger provisions a passenger account. Same session contract as
// Login on success.
func (uc *ClientUC) RegisterPassenger(ctx context.Context, req *models.PassengerRegistration) error {
	uc.mu.Lock()
	uc.setStateLocked(models.StateAuthenticating)
	uc.mu.Unlock()

	req.Phone = utils.NormalizePhone(req.Phone)

	resp, err := uc.gw.RegisterPassenger(ctx, req)
	if err != nil {
		uc.abortAuthentication()
		uc.notifier.Post(models.NotificationError, registrationMessage(err))
		return err
	}

	uc.establishSession(ctx, resp)
	uc.notifier.Post(models.NotificationSuccess, "account created successfully")
	return nil
}

// RegisterDriver provisions a driver account. The phone and activation code
// formats are fast-failed client-side before the request is sent; the server
// remains the authority.
func (uc *ClientUC) RegisterDriver(ctx context.Context, req *models.DriverRegistration) error {
	phone, err := utils.ValidatePhone(req.Phone)
	if err != nil {
		return &clienterr.ValidationError{Field: "phone", Reason: err.Error()}
	}
	code, err := utils.ValidateActivationCode(req.ActivationCode)
	if err != nil {
		return &clienterr.ValidationError{Field: "activation_code", Reason: err.Error()}
	}
	req.Phone = phone
	req.ActivationCode = code

	uc.mu.Lock()
	uc.setStateLocked(models.StateAuthenticating)
	uc.mu.Unlock()

	resp, err := uc.gw.RegisterDriver(ctx, req)
	if err != nil {
		uc.abortAuthentication()
		uc.notifier.Post(models.NotificationError, registrationMessage(err))
		return err
	}

	uc.establishSession(ctx, resp)
	uc.notifier.Post(models.NotificationSuccess, "driver account created successfully")
	return nil
}

// RefreshProfile re-fetches the profile over the current session. This is
// where a driver activation flip is observed: pending -> active requires no
// re-login. A rejected credential resets the session silently, mirroring
// Restore.
func (uc *ClientUC) RefreshProfile(ctx context.Context) error {
	if !uc.State().Authenticated() {
		return clienterr.ErrNotAuthenticated
	}

	profile, err := uc.gw.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, clienterr.ErrSessionExpired) {
			logger.Info("Credential rejected during profile refresh, resetting session")
			uc.Logout()
			return nil
		}
		return fmt.Errorf("failed to refresh profile: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.profile = profile
	uc.setStateLocked(stateForProfile(profile))
	uc.syncLoopsLocked()
	return nil
}

// Logout discards the credential and profile synchronously. Bumping the
// epoch invalidates every in-flight tick; syncLoopsLocked stops the loops
// before their next scheduled tick.
func (uc *ClientUC) Logout() {
	uc.mu.Lock()
	uc.epoch++
	uc.cred.Clear()
	uc.profile = nil
	uc.taxis = nil
	uc.setStateLocked(models.StateAnonymous)
	uc.syncLoopsLocked()
	uc.mu.Unlock()

	if err := uc.repo.DeleteCredential(context.Background()); err != nil {
		logger.Warn("Failed to clear persisted credential", logger.Err(err))
	}

	logger.Info("Logged out")
}

// establishSession installs a fresh authenticated session from an auth
// response and persists the credential for future process starts.
func (uc *ClientUC) establishSession(ctx context.Context, resp *models.AuthResponse) {
	uc.mu.Lock()
	uc.epoch++
	uc.cred.Set(resp.AccessToken)
	uc.profile = resp.User
	uc.setStateLocked(stateForProfile(resp.User))
	uc.syncLoopsLocked()
	uc.mu.Unlock()

	if err := uc.repo.SaveCredential(ctx, resp.AccessToken); err != nil {
		logger.Warn("Failed to persist credential", logger.Err(err))
	}
}

// abortAuthentication returns the state machine to anonymous after a failed
// login or registration attempt.
func (uc *ClientUC) abortAuthentication() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.state == models.StateAuthenticating {
		uc.setStateLocked(models.StateAnonymous)
	}
}

// registrationMessage prefers the server-supplied reason when available
func registrationMessage(err error) string {
	var regErr *clienterr.RegistrationError
	if errors.As(err, &regErr) {
		return regErr.Error()
	}
	return "registration failed, please try again"
}
