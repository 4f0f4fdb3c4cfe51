package entity

import "time"

// Address is stored inline on the restaurants table.
type Address struct {
	City       string
	Street     string
	PostalCode string
}

// Restaurant is an owned resource; CreatedByID always references the creating user.
type Restaurant struct {
	ID            int64
	Name          string
	Description   string
	Category      string
	HasDelivery   bool
	ContactEmail  string
	ContactNumber string
	Address       Address
	LogoURL       string
	CreatedByID   int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Dishes []Dish
}

// CreatorID implements the ownership contract used by authorization.
func (r *Restaurant) CreatorID() int64 { return r.CreatedByID }
