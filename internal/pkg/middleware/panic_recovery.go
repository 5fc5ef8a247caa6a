package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/anqasa/smarttaxi/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics and logs them with a
// stack trace. The bridge is a long-running daemon; one bad request must not
// take down the polling loops.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("request_id", GetRequestID(c)),
		logger.String("stack_trace", stackTrace),
	)

	if !c.Response().Committed {
		err := c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":      "Internal Server Error",
			"message":    "An unexpected error occurred while processing your request",
			"request_id": GetRequestID(c),
		})
		if err != nil {
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
