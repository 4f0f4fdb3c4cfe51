package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/restaurant-api/internal/container"
	"github.com/oksasatya/restaurant-api/internal/interface/middleware"
	"github.com/oksasatya/restaurant-api/pkg/validation"
)

// NewEngine builds the Gin engine with global middleware and every module registered under /api.
func NewEngine(c *container.Container) *gin.Engine {
	cfg := c.Config
	validation.Init()

	r := gin.New()
	if err := middleware.ConfigureClientIP(r, cfg.TrustedProxyList(), cfg.TrustedPlatform); err != nil {
		c.Logger.WithError(err).Warn("invalid TRUSTED_PROXIES; trusting no proxies")
		_ = middleware.ConfigureClientIP(r, nil, cfg.TrustedPlatform)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	if c.Metrics != nil {
		r.Use(c.Metrics.Middleware())
	}
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"Content-Length", "Location", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	reg := NewRegistry(r)
	reg.Use(middleware.SlowRequest(c.Logger, cfg.SlowRequestThreshold))
	InitModules(reg, c)
	reg.RegisterAll()
	return r
}
