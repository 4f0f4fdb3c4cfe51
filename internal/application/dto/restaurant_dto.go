package dto

import (
	"math"
	"time"

	"github.com/oksasatya/restaurant-api/internal/domain/entity"
)

type CreateRestaurantRequest struct {
	Name          string `json:"name" binding:"required,max=25"`
	Description   string `json:"description"`
	Category      string `json:"category" binding:"max=50"`
	HasDelivery   bool   `json:"hasDelivery"`
	ContactEmail  string `json:"contactEmail" binding:"omitempty,email"`
	ContactNumber string `json:"contactNumber" binding:"max=20"`
	City          string `json:"city" binding:"required,max=50"`
	Street        string `json:"street" binding:"required,max=50"`
	PostalCode    string `json:"postalCode" binding:"max=10"`
}

type UpdateRestaurantRequest struct {
	Name        string `json:"name" binding:"required,max=25"`
	Description string `json:"description"`
	HasDelivery bool   `json:"hasDelivery"`
}

// RestaurantQuery is bound from the listing query string.
type RestaurantQuery struct {
	SearchPhrase  string `form:"searchPhrase" validate:"max=100"`
	Category      string `form:"category" validate:"max=50"`
	PageNumber    int    `form:"pageNumber" validate:"min=1,max=1000000"`
	PageSize      int    `form:"pageSize" validate:"oneof=5 10 15"`
	SortBy        string `form:"sortBy" validate:"omitempty,oneof=Name Description Category"`
	SortDirection string `form:"sortDirection" validate:"omitempty,oneof=ASC DESC asc desc"`
}

// RestaurantSearchQuery is bound from GET /api/restaurant/search. Out of range
// sizes fall back to the service default.
type RestaurantSearchQuery struct {
	Q    string `form:"q"`
	Size int    `form:"size"`
}

// ToEntity converts an already validated query.
func (q RestaurantQuery) ToEntity() entity.RestaurantQuery {
	dir := entity.SortAscending
	if q.SortDirection == "DESC" || q.SortDirection == "desc" {
		dir = entity.SortDescending
	}
	return entity.RestaurantQuery{
		SearchPhrase:  q.SearchPhrase,
		Category:      q.Category,
		PageNumber:    q.PageNumber,
		PageSize:      q.PageSize,
		SortBy:        q.SortBy,
		SortDirection: dir,
	}
}

type RestaurantResponse struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Category      string         `json:"category"`
	HasDelivery   bool           `json:"hasDelivery"`
	ContactEmail  string         `json:"contactEmail,omitempty"`
	ContactNumber string         `json:"contactNumber,omitempty"`
	City          string         `json:"city"`
	Street        string         `json:"street"`
	PostalCode    string         `json:"postalCode"`
	LogoURL       string         `json:"logoUrl,omitempty"`
	CreatedByID   int64          `json:"createdById"`
	CreatedAt     time.Time      `json:"createdAt"`
	Dishes        []DishResponse `json:"dishes"`
}

// PagedResult is one page of a listing plus the metadata needed to page further.
type PagedResult[T any] struct {
	Items           []T `json:"items"`
	TotalPages      int `json:"totalPages"`
	ItemsFrom       int `json:"itemsFrom"`
	ItemsTo         int `json:"itemsTo"`
	TotalItemsCount int `json:"totalItemsCount"`
}

// NewPagedResult computes page bounds for total items split into pages of pageSize.
func NewPagedResult[T any](items []T, total, pageSize, pageNumber int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	res := PagedResult[T]{Items: items, TotalItemsCount: total}
	if pageSize <= 0 {
		return res
	}
	offset := entity.PageOffset(pageNumber, pageSize)
	if offset > math.MaxInt-pageSize {
		offset = math.MaxInt - pageSize
	}
	res.ItemsFrom = offset + 1
	res.ItemsTo = offset + pageSize
	res.TotalPages = (total + pageSize - 1) / pageSize
	return res
}

func ToRestaurantResponse(r *entity.Restaurant) RestaurantResponse {
	dishes := make([]DishResponse, 0, len(r.Dishes))
	for i := range r.Dishes {
		dishes = append(dishes, ToDishResponse(&r.Dishes[i]))
	}
	return RestaurantResponse{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		HasDelivery:   r.HasDelivery,
		ContactEmail:  r.ContactEmail,
		ContactNumber: r.ContactNumber,
		City:          r.Address.City,
		Street:        r.Address.Street,
		PostalCode:    r.Address.PostalCode,
		LogoURL:       r.LogoURL,
		CreatedByID:   r.CreatedByID,
		CreatedAt:     r.CreatedAt,
		Dishes:        dishes,
	}
}

// RestaurantSearchHit is a restaurant document returned by full-text search.
type RestaurantSearchHit struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	City        string `json:"city"`
}
