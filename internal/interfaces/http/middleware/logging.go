package middleware

import (
	"github.com/gin-gonic/gin"

	"briefing/internal/shared/logger"
)

func Logger(log logger.Interface) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		args := []any{
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency", param.Latency,
			"client_ip", param.ClientIP,
			"user_agent", param.Request.UserAgent(),
		}

		if param.ErrorMessage != "" {
			args = append(args, "error", param.ErrorMessage)
		}

		if param.StatusCode >= 500 {
			log.Errorw("HTTP request completed", args...)
		} else if param.StatusCode >= 400 {
			log.Warnw("HTTP request completed", args...)
		} else {
			log.Debugw("HTTP request completed", args...)
		}

		return ""
	})
}
