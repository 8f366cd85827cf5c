package api

import (
	"time"

	"sjsage522/formatworker/logger"

	"github.com/gin-gonic/gin"
)

// LoggerMiddleware logs every request through the component logger
func LoggerMiddleware() gin.HandlerFunc {
	log := logger.ForComponent("api")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := log.Debug()
		if c.Writer.Status() >= 500 {
			event = log.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("Request")
	}
}
