package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Seeder fills an empty database with roles, an admin account and sample
// restaurants. Every step is idempotent.
type Seeder struct {
	DB                *sql.DB
	AdminEmail        string
	AdminPasswordHash string
}

type SeedResult struct {
	AdminID          int64
	RestaurantsAdded int
}

type sampleRestaurant struct {
	name, description, category, email, city, street, postal string
	delivery                                                 bool
	dishes                                                   []sampleDish
}

type sampleDish struct {
	name, description string
	price             float64
}

var sampleRestaurants = []sampleRestaurant{
	{
		name:        "KFC",
		description: "Kentucky Fried Chicken, an American fast food chain.",
		category:    "Fast Food",
		email:       "contact@kfc.com",
		city:        "Krakow",
		street:      "Dluga 5",
		postal:      "30-001",
		delivery:    true,
		dishes: []sampleDish{
			{name: "Nashville Hot Chicken", description: "Spicy fried chicken", price: 10.30},
			{name: "Chicken Nuggets", description: "Breaded chicken pieces", price: 5.30},
		},
	},
	{
		name:        "McDonald Szewska",
		description: "McDonald's Corporation, an American fast food chain.",
		category:    "Fast Food",
		email:       "contact@mcdonald.com",
		city:        "Krakow",
		street:      "Szewska 2",
		postal:      "30-001",
		delivery:    true,
	},
}

// Run seeds roles and the admin, then restaurants only when none exist.
func (s *Seeder) Run(ctx context.Context) (SeedResult, error) {
	var res SeedResult

	if _, err := s.DB.ExecContext(ctx, `
		INSERT INTO roles (id, name) VALUES (1, 'User'), (2, 'Manager'), (3, 'Admin')
		ON CONFLICT (id) DO NOTHING
	`); err != nil {
		return res, fmt.Errorf("seed roles: %w", err)
	}

	err := s.DB.QueryRowContext(ctx, `SELECT id FROM users WHERE LOWER(email) = LOWER($1)`, s.AdminEmail).Scan(&res.AdminID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := s.DB.QueryRowContext(ctx, `
			INSERT INTO users (email, first_name, last_name, password_hash, role_id)
			VALUES ($1, 'Admin', '', $2, 3)
			RETURNING id
		`, s.AdminEmail, s.AdminPasswordHash).Scan(&res.AdminID); err != nil {
			return res, fmt.Errorf("seed admin: %w", err)
		}
	case err != nil:
		return res, fmt.Errorf("find admin: %w", err)
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&count); err != nil {
		return res, fmt.Errorf("count restaurants: %w", err)
	}
	if count > 0 {
		return res, nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return res, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, r := range sampleRestaurants {
		var id int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO restaurants (name, description, category, has_delivery, contact_email,
				city, street, postal_code, created_by_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`, r.name, r.description, r.category, r.delivery, r.email, r.city, r.street, r.postal, res.AdminID).Scan(&id); err != nil {
			return res, fmt.Errorf("seed restaurant %q: %w", r.name, err)
		}
		for _, d := range r.dishes {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO dishes (name, description, price, restaurant_id) VALUES ($1, $2, $3, $4)
			`, d.name, d.description, d.price, id); err != nil {
				return res, fmt.Errorf("seed dish %q: %w", d.name, err)
			}
		}
		res.RestaurantsAdded++
	}
	if err := tx.Commit(); err != nil {
		return res, err
	}
	return res, nil
}
