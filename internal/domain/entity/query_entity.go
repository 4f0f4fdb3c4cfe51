package entity

import (
	"math"
	"strings"
)

type SortDirection string

const (
	SortAscending  SortDirection = "ASC"
	SortDescending SortDirection = "DESC"
)

// RestaurantQuery carries listing filters, sorting and pagination.
type RestaurantQuery struct {
	SearchPhrase  string
	Category      string
	PageNumber    int
	PageSize      int
	SortBy        string
	SortDirection SortDirection
}

// Offset is the number of rows skipped for the requested page. It saturates at
// math.MaxInt instead of wrapping negative.
func (q RestaurantQuery) Offset() int {
	return PageOffset(q.PageNumber, q.PageSize)
}

// PageOffset returns (pageNumber-1)*pageSize, saturating at math.MaxInt.
func PageOffset(pageNumber, pageSize int) int {
	if pageNumber < 1 || pageSize < 1 {
		return 0
	}
	if pageNumber-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (pageNumber - 1) * pageSize
}

// Descending reports whether results are ordered high to low.
func (q RestaurantQuery) Descending() bool {
	return strings.EqualFold(string(q.SortDirection), string(SortDescending))
}

// RestaurantSortColumns lists the sortable fields and their column names.
var RestaurantSortColumns = map[string]string{
	"Name":        "name",
	"Description": "description",
	"Category":    "category",
}
