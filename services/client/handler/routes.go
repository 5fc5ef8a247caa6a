package handler

import (
	"github.com/labstack/echo/v4"

	wspkg "github.com/anqasa/smarttaxi/internal/pkg/websocket"
	httpHandler "github.com/anqasa/smarttaxi/services/client/handler/http"
)

// Handler coordinates the UI bridge handlers
type Handler struct {
	bridgeHandler *httpHandler.BridgeHandler
	wsManager     *wspkg.Manager
}

// NewHandler creates and initializes all handlers
func NewHandler(bridgeHandler *httpHandler.BridgeHandler, wsManager *wspkg.Manager) *Handler {
	return &Handler{
		bridgeHandler: bridgeHandler,
		wsManager:     wsManager,
	}
}

// RegisterRoutes registers the UI bridge routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Session
	e.POST("/login", h.bridgeHandler.Login)
	e.POST("/register/passenger", h.bridgeHandler.RegisterPassenger)
	e.POST("/register/driver", h.bridgeHandler.RegisterDriver)
	e.POST("/logout", h.bridgeHandler.Logout)
	e.GET("/status", h.bridgeHandler.Status)
	e.POST("/profile/refresh", h.bridgeHandler.RefreshProfile)

	// Location and taxis
	e.POST("/position", h.bridgeHandler.UpdatePosition)
	e.GET("/taxis", h.bridgeHandler.Taxis)

	// Rides
	e.POST("/rides", h.bridgeHandler.SubmitRide)
	e.GET("/rides", h.bridgeHandler.Rides)

	// Reference data and notifications
	e.GET("/customer-service", h.bridgeHandler.CustomerService)
	e.POST("/notification/dismiss", h.bridgeHandler.DismissNotification)

	// Push channel to the UI layer
	e.GET("/ws", h.wsManager.HandleConnection)
}
