package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anqasa/smarttaxi/internal/pkg/logger"
	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/internal/utils"
	"github.com/anqasa/smarttaxi/services/client"
	"github.com/anqasa/smarttaxi/services/client/clienterr"
)

// BridgeHandler exposes the client runtime to the local UI layer
type BridgeHandler struct {
	clientUC client.ClientUC
}

// NewBridgeHandler creates a new UI bridge handler
func NewBridgeHandler(clientUC client.ClientUC) *BridgeHandler {
	return &BridgeHandler{
		clientUC: clientUC,
	}
}

// Login handles login form submissions
func (h *BridgeHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.clientUC.Login(c.Request().Context(), req.Phone, req.Password); err != nil {
		var authErr *clienterr.AuthError
		if errors.As(err, &authErr) {
			return utils.UnauthorizedResponse(c, authErr.Error())
		}
		logger.Error("Login failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Login failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in", h.clientUC.Session())
}

// RegisterPassenger handles passenger registration form submissions
func (h *BridgeHandler) RegisterPassenger(c echo.Context) error {
	var req models.PassengerRegistration
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.clientUC.RegisterPassenger(c.Request().Context(), &req); err != nil {
		return registrationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", h.clientUC.Session())
}

// RegisterDriver handles driver registration form submissions
func (h *BridgeHandler) RegisterDriver(c echo.Context) error {
	var req models.DriverRegistration
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.clientUC.RegisterDriver(c.Request().Context(), &req); err != nil {
		return registrationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Driver account created", h.clientUC.Session())
}

// Logout discards the session
func (h *BridgeHandler) Logout(c echo.Context) error {
	h.clientUC.Logout()
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// Status returns the session view, current position and visible notification
func (h *BridgeHandler) Status(c echo.Context) error {
	pos, hasPos := h.clientUC.CurrentPosition()

	payload := map[string]interface{}{
		"session":      h.clientUC.Session(),
		"notification": h.clientUC.Notification(),
	}
	if hasPos {
		payload["position"] = pos
	}

	return utils.SuccessResponse(c, http.StatusOK, "", payload)
}

// RefreshProfile re-fetches the profile; a driver observes activation here
func (h *BridgeHandler) RefreshProfile(c echo.Context) error {
	if err := h.clientUC.RefreshProfile(c.Request().Context()); err != nil {
		if errors.Is(err, clienterr.ErrNotAuthenticated) {
			return utils.UnauthorizedResponse(c, "Not logged in")
		}
		return utils.InternalServerErrorResponse(c, "Failed to refresh profile")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.clientUC.Session())
}

// Taxis returns the current nearby-taxi snapshot, nearest first
func (h *BridgeHandler) Taxis(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.clientUC.NearbyTaxis())
}

// UpdatePosition receives a device position from the UI layer
func (h *BridgeHandler) UpdatePosition(c echo.Context) error {
	var pos models.GeoPosition
	if err := c.Bind(&pos); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	h.clientUC.UpdatePosition(pos)
	return utils.SuccessResponse(c, http.StatusOK, "Position updated", nil)
}

// SubmitRide handles ride request form submissions. On an error response the
// UI keeps the form contents so the user can retry without re-entering them;
// on success it clears the form.
func (h *BridgeHandler) SubmitRide(c echo.Context) error {
	var form models.RideForm
	if err := c.Bind(&form); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.clientUC.SubmitRide(c.Request().Context(), &form); err != nil {
		var valErr *clienterr.ValidationError
		switch {
		case errors.As(err, &valErr):
			return utils.BadRequestResponse(c, valErr.Error())
		case errors.Is(err, clienterr.ErrNotAuthenticated):
			return utils.UnauthorizedResponse(c, "Not logged in")
		case errors.Is(err, clienterr.ErrNoPosition):
			return utils.BadRequestResponse(c, "Current position unknown")
		default:
			return utils.InternalServerErrorResponse(c, "Ride request failed")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested", nil)
}

// Rides returns the user's ride history
func (h *BridgeHandler) Rides(c echo.Context) error {
	rides, err := h.clientUC.RideHistory(c.Request().Context())
	if err != nil {
		if errors.Is(err, clienterr.ErrNotAuthenticated) {
			return utils.UnauthorizedResponse(c, "Not logged in")
		}
		return utils.InternalServerErrorResponse(c, "Failed to fetch ride history")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", rides)
}

// CustomerService returns the customer service reference data
func (h *BridgeHandler) CustomerService(c echo.Context) error {
	info := h.clientUC.CustomerService()
	if info == nil {
		return utils.ErrorResponseHandler(c, http.StatusNotFound, "Customer service info unavailable")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", info)
}

// DismissNotification clears the visible notification
func (h *BridgeHandler) DismissNotification(c echo.Context) error {
	h.clientUC.DismissNotification()
	return utils.SuccessResponse(c, http.StatusOK, "", nil)
}

func registrationErrorResponse(c echo.Context, err error) error {
	var valErr *clienterr.ValidationError
	var regErr *clienterr.RegistrationError
	switch {
	case errors.As(err, &valErr):
		return utils.BadRequestResponse(c, valErr.Error())
	case errors.As(err, &regErr):
		return utils.ConflictResponse(c, regErr.Error())
	default:
		logger.Error("Registration failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Registration failed")
	}
}
