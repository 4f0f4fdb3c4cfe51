package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/oksasatya/restaurant-api/internal/domain/entity"
	"github.com/oksasatya/restaurant-api/internal/domain/repository"
)

type RestaurantRepository struct {
	s *Store
}

func (r *RestaurantRepository) Create(_ context.Context, in *entity.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.restaurantSeq++
	in.ID = r.s.restaurantSeq
	in.CreatedAt = r.s.now()
	in.UpdatedAt = in.CreatedAt
	stored := *in
	stored.Dishes = nil
	r.s.restaurants[in.ID] = stored
	return nil
}

func (r *RestaurantRepository) GetByID(_ context.Context, id int64) (*entity.Restaurant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out, ok := r.s.restaurants[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &out, nil
}

// List mirrors the SQL repository: phrase over name and description,
// exact category, whitelisted sort column with id as tiebreaker.
func (r *RestaurantRepository) List(_ context.Context, q entity.RestaurantQuery) ([]entity.Restaurant, int, error) {
	r.s.mu.RLock()
	matched := make([]entity.Restaurant, 0, len(r.s.restaurants))
	for _, rest := range r.s.restaurants {
		if matches(rest, q) {
			matched = append(matched, rest)
		}
	}
	r.s.mu.RUnlock()

	key := sortKey(q.SortBy)
	desc := q.Descending()
	sort.Slice(matched, func(i, j int) bool {
		a, b := key(matched[i]), key(matched[j])
		if a != b {
			if desc {
				return a > b
			}
			return a < b
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	from := q.Offset()
	if from < 0 || from >= total || q.PageSize <= 0 {
		return []entity.Restaurant{}, total, nil
	}
	to := from + min(q.PageSize, total-from)
	return matched[from:to], total, nil
}

func matches(r entity.Restaurant, q entity.RestaurantQuery) bool {
	if phrase := strings.ToLower(strings.TrimSpace(q.SearchPhrase)); phrase != "" {
		if !strings.Contains(strings.ToLower(r.Name), phrase) &&
			!strings.Contains(strings.ToLower(r.Description), phrase) {
			return false
		}
	}
	if category := strings.TrimSpace(q.Category); category != "" && !strings.EqualFold(r.Category, category) {
		return false
	}
	return true
}

func sortKey(by string) func(entity.Restaurant) string {
	switch entity.RestaurantSortColumns[by] {
	case "name":
		return func(r entity.Restaurant) string { return r.Name }
	case "description":
		return func(r entity.Restaurant) string { return r.Description }
	case "category":
		return func(r entity.Restaurant) string { return r.Category }
	default:
		return func(entity.Restaurant) string { return "" }
	}
}

func (r *RestaurantRepository) Update(_ context.Context, in *entity.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.restaurants[in.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Name = in.Name
	cur.Description = in.Description
	cur.HasDelivery = in.HasDelivery
	cur.LogoURL = in.LogoURL
	cur.UpdatedAt = r.s.now()
	r.s.restaurants[in.ID] = cur
	in.UpdatedAt = cur.UpdatedAt
	return nil
}

// Delete cascades to the restaurant's dishes.
func (r *RestaurantRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.restaurants[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.restaurants, id)
	for did, d := range r.s.dishes {
		if d.RestaurantID == id {
			delete(r.s.dishes, did)
		}
	}
	return nil
}

func (r *RestaurantRepository) CountByCreator(_ context.Context, userID int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, rest := range r.s.restaurants {
		if rest.CreatedByID == userID {
			n++
		}
	}
	return n, nil
}

var _ repository.RestaurantRepository = (*RestaurantRepository)(nil)
