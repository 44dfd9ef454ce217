package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ncastellanos/flotilla/internal/pkg/config"
	"github.com/ncastellanos/flotilla/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ServiceAPIKeys maps internal consumers to their API keys
var ServiceAPIKeys = map[string]string{
	"watch-cli":    config.GetEnv("WATCH_CLI_API_KEY", ""),
	"ops-scripts":  config.GetEnv("OPS_SCRIPTS_API_KEY", ""),
	"display-wall": config.GetEnv("DISPLAY_WALL_API_KEY", ""),
}

// ValidateAPIKey validates the API key for internal, non-interactive consumers
func ValidateAPIKey(allowedConsumers ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			validKey := false
			for _, consumer := range allowedConsumers {
				if ServiceAPIKeys[consumer] != "" && strings.EqualFold(apiKey, ServiceAPIKeys[consumer]) {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
