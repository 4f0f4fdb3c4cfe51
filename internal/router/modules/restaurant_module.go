package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/restaurant-api/internal/authorization"
	"github.com/oksasatya/restaurant-api/internal/domain/entity"
	handlers "github.com/oksasatya/restaurant-api/internal/interface/http"
	"github.com/oksasatya/restaurant-api/internal/interface/middleware"
	"github.com/oksasatya/restaurant-api/pkg/helpers"
)

// RestaurantModule wires restaurant routes.
// Public: GET /api/restaurant, GET /api/restaurant/search, GET /api/restaurant/:id
// Protected: POST (Admin, Manager), PUT, DELETE, PUT /:id/logo (owner or Admin)
type RestaurantModule struct {
	Handler  *handlers.RestaurantHandler
	JWT      *helpers.JWTManager
	Policies *authorization.Policies
	Logger   *logrus.Logger
	Redis    *redis.Client

	// RequireMinCreations gates listing behind PolicyCreatedAtLeastTwoRestaurants.
	RequireMinCreations bool
}

func (m *RestaurantModule) Register(rg *gin.RouterGroup) {
	restaurants := rg.Group("/restaurant")

	list := []gin.HandlerFunc{middleware.OptionalAuth(m.JWT)}
	if m.RequireMinCreations {
		list = []gin.HandlerFunc{
			middleware.Auth(m.JWT),
			middleware.RequirePolicy(m.Policies, authorization.PolicyCreatedAtLeastTwoRestaurants, m.Logger),
		}
	}
	restaurants.GET("", append(list, m.Handler.List)...)
	restaurants.GET("/search", m.Handler.Search)
	restaurants.GET("/:id", m.Handler.Get)

	auth := restaurants.Group("")
	auth.Use(middleware.Auth(m.JWT))
	{
		limit := writeLimiter(m.Redis, m.Logger)
		auth.POST("", middleware.RequireRole(entity.RoleAdmin, entity.RoleManager), limit, m.Handler.Create)
		auth.PUT("/:id", limit, m.Handler.Update)
		auth.DELETE("/:id", limit, m.Handler.Delete)
		auth.PUT("/:id/logo", limit, m.Handler.UploadLogo)
	}
}
