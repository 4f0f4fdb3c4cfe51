package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, PageOffset(1, 10))
	assert.Equal(t, 10, PageOffset(2, 10))
	assert.Equal(t, 0, PageOffset(0, 10))
	assert.Equal(t, 0, PageOffset(3, 0))
	assert.Equal(t, math.MaxInt, PageOffset(math.MaxInt, 15))
	assert.Equal(t, math.MaxInt, RestaurantQuery{PageNumber: 1_000_000_000_000_000_000, PageSize: 10}.Offset())
}
