package entity

// Role represents an authorization role.
// One role per user via users.role_id
type Role struct {
	ID   int64
	Name string
}

// Seeded role names. Admin is the only privileged role.
const (
	RoleUser    = "User"
	RoleManager = "Manager"
	RoleAdmin   = "Admin"
)

// DefaultRoleID is assigned to newly registered users (the seeded "User" role).
const DefaultRoleID int64 = 1
