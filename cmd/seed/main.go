package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/restaurant-api/config"
	pginfra "github.com/oksasatya/restaurant-api/internal/infrastructure/postgres"
	"github.com/oksasatya/restaurant-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		logger.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		logger.Fatalf("failed to hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seeder := &pginfra.Seeder{DB: db, AdminEmail: cfg.SeedAdminEmail, AdminPasswordHash: hash}
	res, err := seeder.Run(ctx)
	if err != nil {
		logger.Fatalf("seed failed: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"admin_id":          res.AdminID,
		"admin_email":       cfg.SeedAdminEmail,
		"restaurants_added": res.RestaurantsAdded,
	}).Info("seed complete")
}
