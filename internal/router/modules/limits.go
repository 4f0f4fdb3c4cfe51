package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/restaurant-api/internal/interface/middleware"
)

// writeLimiter caps mutations per authenticated user (60 req/min). It must run
// after Auth so the principal is known.
func writeLimiter(rdb *redis.Client, logger *logrus.Logger) gin.HandlerFunc {
	return middleware.RateLimit(rdb, logger, 60, time.Minute, middleware.KeyByPrincipal(), nil)
}
