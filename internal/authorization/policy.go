package authorization

import (
	"context"
	"fmt"
)

// Policy names a principal-level rule.
type Policy string

const (
	// PolicyCreatedAtLeastTwoRestaurants gates privileged listing behind two created restaurants.
	PolicyCreatedAtLeastTwoRestaurants Policy = "CreatedAtLeast2Restaurants"
)

// PolicyFunc evaluates one policy for a principal.
type PolicyFunc func(ctx context.Context, p Principal) (bool, error)

// Policies dispatches named policies by direct lookup.
type Policies struct {
	rules map[Policy]PolicyFunc
}

// NewPolicies builds the fixed policy set backed by the restaurant counter.
func NewPolicies(restaurants CreatorCounter) *Policies {
	return &Policies{rules: map[Policy]PolicyFunc{
		PolicyCreatedAtLeastTwoRestaurants: func(ctx context.Context, p Principal) (bool, error) {
			return MinimumCreated(ctx, restaurants, p, 2)
		},
	}}
}

// Check returns nil when p satisfies the policy and ErrForbidden when it does not.
func (ps *Policies) Check(ctx context.Context, name Policy, p Principal) error {
	rule, ok := ps.rules[name]
	if !ok {
		return fmt.Errorf("authorization: unknown policy %q", name)
	}
	allowed, err := rule(ctx, p)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrForbidden
	}
	return nil
}
