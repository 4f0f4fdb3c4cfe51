package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	handlers "github.com/oksasatya/restaurant-api/internal/interface/http"
	"github.com/oksasatya/restaurant-api/internal/interface/middleware"
	"github.com/oksasatya/restaurant-api/pkg/helpers"
)

// DishModule wires /api/restaurant/:id/dish. Every route needs a bearer token;
// mutations are further checked against the parent restaurant's owner.
type DishModule struct {
	Handler *handlers.DishHandler
	JWT     *helpers.JWTManager
	Redis   *redis.Client
	Logger  *logrus.Logger
}

func NewDishModule(h *handlers.DishHandler, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *DishModule {
	return &DishModule{Handler: h, JWT: jwt, Redis: rdb, Logger: logger}
}

func (m *DishModule) Register(rg *gin.RouterGroup) {
	dishes := rg.Group("/restaurant/:id/dish")
	dishes.Use(middleware.Auth(m.JWT))
	{
		limit := writeLimiter(m.Redis, m.Logger)
		dishes.POST("", limit, m.Handler.Create)
		dishes.GET("", m.Handler.List)
		dishes.DELETE("", limit, m.Handler.DeleteAll)
		dishes.GET("/:dishId", m.Handler.Get)
		dishes.PUT("/:dishId", limit, m.Handler.Update)
		dishes.DELETE("/:dishId", limit, m.Handler.Delete)
	}
}
