package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/ncastellanos/flotilla/internal/pkg/logger"
	"github.com/ncastellanos/flotilla/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// and returns a 500 envelope instead of dropping the connection.
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered in HTTP handler",
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.Any("panic", r),
						logger.String("stack", string(debug.Stack())))

					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}

// RecoverWithLog runs fn and converts a panic into an error; used by
// goroutines that must not take the process down.
func RecoverWithLog(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic recovered",
				logger.String("component", name),
				logger.Any("panic", r))
			err = fmt.Errorf("panic in %s: %v", name, r)
		}
	}()

	return fn()
}
