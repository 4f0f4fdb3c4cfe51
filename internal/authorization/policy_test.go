package authorization

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countStub struct {
	counts map[int64]int
	err    error
	calls  int
}

func (s *countStub) CountByCreator(_ context.Context, userID int64) (int, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.counts[userID], nil
}

func TestMinimumCreated_AllowsIffCountMeetsThreshold(t *testing.T) {
	ctx := context.Background()
	for k := 0; k <= 4; k++ {
		stub := &countStub{counts: map[int64]int{7: k}}
		for n := 0; n <= 5; n++ {
			ok, err := MinimumCreated(ctx, stub, Principal{ID: 7}, n)
			require.NoError(t, err)
			assert.Equal(t, k >= n, ok, "k=%d n=%d", k, n)
		}
	}
}

func TestMinimumCreated_ZeroResourcesDeniesWithoutError(t *testing.T) {
	ok, err := MinimumCreated(context.Background(), &countStub{counts: map[int64]int{}}, Principal{ID: 1}, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMinimumCreated_AnonymousSkipsLookup(t *testing.T) {
	stub := &countStub{}
	ok, err := MinimumCreated(context.Background(), stub, Anonymous(), 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, stub.calls)
}

func TestMinimumCreated_PropagatesStoreError(t *testing.T) {
	boom := errors.New("db down")
	_, err := MinimumCreated(context.Background(), &countStub{err: boom}, Principal{ID: 1}, 1)
	assert.ErrorIs(t, err, boom)
}

func TestPolicies_CreatedAtLeastTwoRestaurants(t *testing.T) {
	stub := &countStub{counts: map[int64]int{1: 1}}
	policies := NewPolicies(stub)
	ctx := context.Background()

	assert.ErrorIs(t, policies.Check(ctx, PolicyCreatedAtLeastTwoRestaurants, Principal{ID: 1}), ErrForbidden)

	stub.counts[1] = 2
	assert.NoError(t, policies.Check(ctx, PolicyCreatedAtLeastTwoRestaurants, Principal{ID: 1}))
}

func TestPolicies_UnknownPolicy(t *testing.T) {
	err := NewPolicies(&countStub{}).Check(context.Background(), Policy("nope"), Principal{ID: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrForbidden)
}
