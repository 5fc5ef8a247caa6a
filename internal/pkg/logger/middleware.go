package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware creates request logging middleware for the Echo framework
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			entry := logger.With(
				String("method", method),
				String("path", path),
				Int("status", statusCode),
				Int64("latency_ms", latency.Milliseconds()),
				String("request_id", requestID),
			)

			switch {
			case statusCode >= 500:
				entry.Error("Request failed", Err(err))
			case statusCode >= 400:
				entry.Warn("Client error", Err(err))
			default:
				entry.Info("Request processed")
			}

			return err
		}
	}
}
