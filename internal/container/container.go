// Package container carries the constructed infrastructure shared by the
// router modules. Optional dependencies are left nil when not configured.
package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/restaurant-api/config"
	"github.com/oksasatya/restaurant-api/internal/application"
	"github.com/oksasatya/restaurant-api/internal/domain/repository"
	"github.com/oksasatya/restaurant-api/internal/infrastructure/memory"
	"github.com/oksasatya/restaurant-api/internal/interface/middleware"
	"github.com/oksasatya/restaurant-api/pkg/helpers"
)

type Container struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Redis   *redis.Client
	JWT     *helpers.JWTManager
	Metrics *middleware.Metrics

	Users       repository.UserRepository
	Restaurants repository.RestaurantRepository
	Dishes      repository.DishRepository

	Index application.SearchIndex
	Logos application.ObjectStore
	Mail  application.Publisher
}

// New builds a container with the JWT manager and metrics derived from cfg.
// Repositories and optional clients are attached by the caller.
func New(cfg *config.Config, logger *logrus.Logger) *Container {
	return &Container{
		Config:  cfg,
		Logger:  logger,
		JWT:     helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL),
		Metrics: middleware.NewMetrics(cfg.AppName),
	}
}

// UseMemory backs all repositories with a fresh in-memory store.
func (c *Container) UseMemory() *memory.Store {
	store := memory.NewStore()
	c.Users = store.Users()
	c.Restaurants = store.Restaurants()
	c.Dishes = store.Dishes()
	return store
}
