package router

import (
	"github.com/oksasatya/restaurant-api/internal/application"
	"github.com/oksasatya/restaurant-api/internal/authorization"
	"github.com/oksasatya/restaurant-api/internal/container"
	handlers "github.com/oksasatya/restaurant-api/internal/interface/http"
	"github.com/oksasatya/restaurant-api/internal/router/modules"
)

type RestaurantModuleDeps struct {
	Service  *application.RestaurantService
	Handler  *handlers.RestaurantHandler
	Dishes   *handlers.DishHandler
	Policies *authorization.Policies
}

func buildRestaurantDeps(c *container.Container) RestaurantModuleDeps {
	service := application.NewRestaurantService(c.Restaurants, c.Dishes, c.Index, c.Logos, c.Logger)
	dishes := application.NewDishService(c.Restaurants, c.Dishes)

	return RestaurantModuleDeps{
		Service:  service,
		Handler:  handlers.NewRestaurantHandler(service, c.Logger),
		Dishes:   handlers.NewDishHandler(dishes, c.Logger),
		Policies: authorization.NewPolicies(c.Restaurants),
	}
}

func buildAccountHandler(c *container.Container) *handlers.AccountHandler {
	service := application.NewAccountService(c.Users, c.JWT, c.Mail, c.Config.MailSendEnabled, c.Logger)
	return handlers.NewAccountHandler(service, c.Logger)
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, c *container.Container) {
	deps := buildRestaurantDeps(c)

	r.Add(modules.NewAccountModule(buildAccountHandler(c), c.Redis, c.Logger))
	r.Add(&modules.RestaurantModule{
		Handler:             deps.Handler,
		JWT:                 c.JWT,
		Policies:            deps.Policies,
		Logger:              c.Logger,
		Redis:               c.Redis,
		RequireMinCreations: c.Config.PolicyMinRestaurantsEnabled,
	})
	r.Add(modules.NewDishModule(deps.Dishes, c.JWT, c.Redis, c.Logger))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Metrics, c.Redis, c.Logger))
	}
}
