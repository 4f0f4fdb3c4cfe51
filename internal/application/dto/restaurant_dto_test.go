package dto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagedResult(t *testing.T) {
	res := NewPagedResult([]int{1, 2}, 12, 10, 2)
	assert.Equal(t, 11, res.ItemsFrom)
	assert.Equal(t, 20, res.ItemsTo)
	assert.Equal(t, 2, res.TotalPages)

	empty := NewPagedResult[int](nil, 0, 5, 1)
	assert.NotNil(t, empty.Items)
	assert.Zero(t, empty.TotalPages)
}

func TestNewPagedResult_HugePageNumberStaysPositive(t *testing.T) {
	res := NewPagedResult[int](nil, 3, 10, math.MaxInt)
	assert.Positive(t, res.ItemsFrom)
	assert.Equal(t, math.MaxInt, res.ItemsTo)
}
