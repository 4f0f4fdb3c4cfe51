package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	handlers "github.com/oksasatya/restaurant-api/internal/interface/http"
	"github.com/oksasatya/restaurant-api/internal/interface/middleware"
)

// AccountModule exposes registration and login.
// Public: POST /api/account/register, POST /api/account/login
type AccountModule struct {
	Handler *handlers.AccountHandler
	Redis   *redis.Client
	Logger  *logrus.Logger
}

func NewAccountModule(h *handlers.AccountHandler, rdb *redis.Client, logger *logrus.Logger) *AccountModule {
	return &AccountModule{Handler: h, Redis: rdb, Logger: logger}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(m.Redis, m.Logger, 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP
	registerLimiter := middleware.RateLimit(m.Redis, m.Logger, 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	account := rg.Group("/account")
	account.POST("/register", registerLimiter, m.Handler.Register)
	account.POST("/login", loginLimiter, m.Handler.Login)
}
