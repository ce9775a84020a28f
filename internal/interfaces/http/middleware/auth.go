package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"briefing/internal/shared/logger"
	"briefing/internal/shared/utils"
)

const apiKeyHeader = "X-API-Key"

type APIKeyMiddleware struct {
	apiKey string
	logger logger.Interface
}

func NewAPIKeyMiddleware(apiKey string, logger logger.Interface) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		apiKey: apiKey,
		logger: logger,
	}
}

// RequireAPIKey validates the X-API-Key header against the configured
// key. An empty configured key disables the check, for local
// development only.
func (m *APIKeyMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(apiKeyHeader)
		if provided == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing API key")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.apiKey)) != 1 {
			m.logger.Warnw("rejected request with invalid API key",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid API key")
			c.Abort()
			return
		}

		c.Next()
	}
}
