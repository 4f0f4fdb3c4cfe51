package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/restaurant-api/internal/application/dto"
)

func TestRestaurantQuery_PageSizeAllowList(t *testing.T) {
	qv := NewRestaurantQuery()
	for size := -1; size <= 120; size++ {
		vs := qv.Validate(dto.RestaurantQuery{PageSize: size, PageNumber: 1})
		want := size == 5 || size == 10 || size == 15
		assert.Equal(t, want, len(vs) == 0, "pageSize=%d", size)
	}
}

func TestRestaurantQuery_PageNumber(t *testing.T) {
	qv := NewRestaurantQuery()
	for _, n := range []int{-2, 0} {
		assert.NotEmpty(t, qv.Validate(dto.RestaurantQuery{PageSize: 10, PageNumber: n}), "pageNumber=%d", n)
	}
	for _, n := range []int{1, 2, 50, 1_000_000} {
		assert.Empty(t, qv.Validate(dto.RestaurantQuery{PageSize: 10, PageNumber: n}), "pageNumber=%d", n)
	}
}

func TestRestaurantQuery_PageNumberUpperBound(t *testing.T) {
	qv := NewRestaurantQuery()
	for _, n := range []int{1_000_001, 1_000_000_000_000_000_000} {
		vs := qv.Validate(dto.RestaurantQuery{PageSize: 10, PageNumber: n})
		require.Len(t, vs, 1, "pageNumber=%d", n)
		assert.Equal(t, "pageNumber", vs[0].Field)
	}
}

func TestRestaurantQuery_EmptyQueryRejected(t *testing.T) {
	vs := NewRestaurantQuery().Validate(dto.RestaurantQuery{})
	assert.Len(t, vs, 2)
}

func TestRestaurantQuery_Sorting(t *testing.T) {
	qv := NewRestaurantQuery()
	assert.Empty(t, qv.Validate(dto.RestaurantQuery{PageSize: 5, PageNumber: 1, SortBy: "Name", SortDirection: "DESC"}))
	assert.NotEmpty(t, qv.Validate(dto.RestaurantQuery{PageSize: 5, PageNumber: 1, SortBy: "Password"}))
	assert.NotEmpty(t, qv.Validate(dto.RestaurantQuery{PageSize: 5, PageNumber: 1, SortDirection: "sideways"}))
}
