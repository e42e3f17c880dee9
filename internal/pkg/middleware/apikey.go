package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/cryda/reconciler/internal/pkg/models"
	"github.com/cryda/reconciler/internal/utils"
)

const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware validates the internal API key on operator endpoints
// (resume, sweep).
func APIKeyMiddleware(config *models.APIKeyConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			if config.InternalKey == "" ||
				subtle.ConstantTimeCompare([]byte(apiKey), []byte(config.InternalKey)) != 1 {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
