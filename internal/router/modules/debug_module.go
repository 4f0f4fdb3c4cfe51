package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/restaurant-api/internal/interface/middleware"
)

// DebugModule exposes expvar and Prometheus metrics, rate-limited per IP
// except for private-network scrapers.
type DebugModule struct {
	Metrics *middleware.Metrics
	Redis   *redis.Client
	Logger  *logrus.Logger
}

func NewDebugModule(metrics *middleware.Metrics, rdb *redis.Client, logger *logrus.Logger) *DebugModule {
	return &DebugModule{Metrics: metrics, Redis: rdb, Logger: logger}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(m.Redis, m.Logger, 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
	if m.Metrics != nil {
		rg.GET("/metrics", rl, gin.WrapH(m.Metrics.Handler()))
	}
}
