// Package authorization holds the ownership and policy predicates that gate
// restaurant and dish mutations. Every predicate is a pure function over an
// explicit principal so it can be exercised without an HTTP request.
package authorization

import (
	"errors"

	"github.com/oksasatya/restaurant-api/internal/domain/entity"
)

// ErrForbidden is the only detail surfaced to a caller that fails a check.
var ErrForbidden = errors.New("forbidden")

// Principal is the caller derived from token claims. The zero value is anonymous.
type Principal struct {
	ID   int64
	Role string
}

// Anonymous returns the principal used when no token was presented.
func Anonymous() Principal { return Principal{} }

// IsAnonymous reports whether the principal lacks a usable id.
func (p Principal) IsAnonymous() bool { return p.ID <= 0 }

// IsPrivileged reports whether the principal may act on resources it does not own.
func (p Principal) IsPrivileged() bool { return p.Role == entity.RoleAdmin }

// HasRole reports whether the principal holds one of roles.
func (p Principal) HasRole(roles ...string) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
