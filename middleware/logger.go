package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jarredbaird/express-jobly/logging/logger"
	"github.com/sirupsen/logrus"
)

// Logger logs one entry per request once the handler chain has finished.
func Logger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		entry := l.EntryWithFields(c.Request.Context(), logrus.Fields{
			"method":   method,
			"path":     path,
			"query":    c.Request.URL.RawQuery,
			"status":   status,
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		})

		switch {
		case status >= 500:
			entry.Error("HTTP request")
		case status >= 400:
			entry.Warn("HTTP request")
		default:
			entry.Info("HTTP request")
		}
	}
}
