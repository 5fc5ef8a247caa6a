package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every bridge request with an ID so UI calls can be
// correlated with the backend requests they trigger.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set("request_id", requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID extracts the request ID from the Echo context
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get("request_id").(string); ok {
		return requestID
	}
	return ""
}
