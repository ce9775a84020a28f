package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"briefing/internal/infrastructure/ratelimit"
	sharedConfig "briefing/internal/shared/config"
	"briefing/internal/shared/logger"
	"briefing/internal/shared/utils"
)

// RateLimitMiddleware enforces per-IP request limits through a shared
// limiter backend, so limits hold across multiple instances.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewRateLimitMiddleware(
	limiter ratelimit.RateLimiter,
	cfg *sharedConfig.RateLimitConfig,
	logger logger.Interface,
) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		config: ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.RequestsPerMinute,
			RequestsPerHour:   cfg.RequestsPerHour,
			RequestsPerDay:    cfg.RequestsPerDay,
		},
		logger: logger,
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()

		allowed, err := m.limiter.Allow(key, m.config)
		if err != nil {
			// A broken limiter backend should not take the API down
			// with it, so requests pass through.
			m.logger.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
