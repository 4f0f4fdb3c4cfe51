package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/restaurant-api/internal/domain/entity"
	"github.com/oksasatya/restaurant-api/internal/domain/repository"
)

func seedRestaurants(t *testing.T, repo *RestaurantRepository, owner int64, names ...string) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(names))
	for _, n := range names {
		r := &entity.Restaurant{Name: n, Description: "desc " + n, Category: "Fast Food", CreatedByID: owner}
		require.NoError(t, repo.Create(context.Background(), r))
		ids = append(ids, r.ID)
	}
	return ids
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	u := &entity.User{Email: "Ann@Example.com", RoleID: entity.DefaultRoleID}
	require.NoError(t, users.Create(ctx, u))
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, entity.RoleUser, u.RoleName)

	got, err := users.GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	exists, err := users.ExistsByEmail(ctx, "ANN@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = users.ExistsByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	err = users.Create(ctx, &entity.User{Email: "ann@example.com", RoleID: entity.DefaultRoleID})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = users.GetByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRestaurantRepository_ListPagesAndCounts(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Restaurants()
	for i := 0; i < 12; i++ {
		seedRestaurants(t, repo, 1, fmt.Sprintf("R%02d", i))
	}

	page, total, err := repo.List(ctx, entity.RestaurantQuery{PageNumber: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, page, 5)
	assert.Equal(t, "R05", page[0].Name)

	page, _, err = repo.List(ctx, entity.RestaurantQuery{PageNumber: 3, PageSize: 5})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	page, total, err = repo.List(ctx, entity.RestaurantQuery{PageNumber: 4, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Empty(t, page)

	page, total, err = repo.List(ctx, entity.RestaurantQuery{PageNumber: 1_000_000_000_000_000_000, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Empty(t, page)
}

func TestRestaurantRepository_ListFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Restaurants()
	seedRestaurants(t, repo, 1, "Burger Hut", "Pasta Place", "Apple Pie")
	require.NoError(t, repo.Create(ctx, &entity.Restaurant{Name: "Sushi Bar", Category: "Japanese", CreatedByID: 1}))

	page, total, err := repo.List(ctx, entity.RestaurantQuery{SearchPhrase: "PLACE", PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Pasta Place", page[0].Name)

	_, total, err = repo.List(ctx, entity.RestaurantQuery{Category: "japanese", PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	page, _, err = repo.List(ctx, entity.RestaurantQuery{
		SortBy: "Name", SortDirection: entity.SortDescending, PageNumber: 1, PageSize: 10,
	})
	require.NoError(t, err)
	names := make([]string, 0, len(page))
	for _, r := range page {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Sushi Bar", "Pasta Place", "Burger Hut", "Apple Pie"}, names)
}

func TestRestaurantRepository_DeleteCascadesDishes(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	restaurants, dishes := store.Restaurants(), store.Dishes()
	ids := seedRestaurants(t, restaurants, 1, "A", "B")

	require.NoError(t, dishes.Create(ctx, &entity.Dish{Name: "x", RestaurantID: ids[0]}))
	require.NoError(t, dishes.Create(ctx, &entity.Dish{Name: "y", RestaurantID: ids[1]}))

	require.NoError(t, restaurants.Delete(ctx, ids[0]))
	left, err := dishes.ListByRestaurant(ctx, ids[0])
	require.NoError(t, err)
	assert.Empty(t, left)

	other, err := dishes.ListByRestaurant(ctx, ids[1])
	require.NoError(t, err)
	assert.Len(t, other, 1)

	assert.ErrorIs(t, restaurants.Delete(ctx, ids[0]), repository.ErrNotFound)
}

func TestRestaurantRepository_CountByCreator(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Restaurants()
	seedRestaurants(t, repo, 1, "A", "B")
	seedRestaurants(t, repo, 2, "C")

	n, err := repo.CountByCreator(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.CountByCreator(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDishRepository_ScopedToRestaurant(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	ids := seedRestaurants(t, store.Restaurants(), 1, "A", "B")
	dishes := store.Dishes()

	d := &entity.Dish{Name: "Soup", Price: 4.5, RestaurantID: ids[0]}
	require.NoError(t, dishes.Create(ctx, d))

	_, err := dishes.GetByID(ctx, ids[1], d.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, dishes.Delete(ctx, ids[1], d.ID), repository.ErrNotFound)

	d.Price = 5
	require.NoError(t, dishes.Update(ctx, d))
	got, err := dishes.GetByID(ctx, ids[0], d.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Price)

	assert.ErrorIs(t, dishes.Create(ctx, &entity.Dish{Name: "z", RestaurantID: 404}), repository.ErrNotFound)

	require.NoError(t, dishes.DeleteByRestaurant(ctx, ids[0]))
	_, err = dishes.GetByID(ctx, ids[0], d.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
