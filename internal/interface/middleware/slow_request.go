package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/restaurant-api/pkg/helpers"
)

// SlowRequest logs requests whose handling took longer than threshold.
func SlowRequest(logger *logrus.Logger, threshold time.Duration) gin.HandlerFunc {
	if logger == nil || threshold <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		if elapsed <= threshold {
			return
		}
		helpers.RequestEntry(logger, c).WithFields(logrus.Fields{
			"elapsed_ms": elapsed.Milliseconds(),
			"status":     c.Writer.Status(),
		}).Infof("request [%s] at %s took %d ms", c.Request.Method, c.Request.URL.Path, elapsed.Milliseconds())
	}
}
