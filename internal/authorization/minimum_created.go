package authorization

import "context"

// CreatorCounter counts resources created by a user.
type CreatorCounter interface {
	CountByCreator(ctx context.Context, userID int64) (int, error)
}

// MinimumCreated allows p iff it has created at least threshold resources.
// Anonymous principals are denied without touching the store.
func MinimumCreated(ctx context.Context, counter CreatorCounter, p Principal, threshold int) (bool, error) {
	if p.IsAnonymous() {
		return false, nil
	}
	n, err := counter.CountByCreator(ctx, p.ID)
	if err != nil {
		return false, err
	}
	return n >= threshold, nil
}
