// Package memory keeps users, restaurants and dishes in process memory.
// It backs STORAGE_DRIVER=memory and the service and handler tests.
package memory

import (
	"sync"
	"time"

	"github.com/oksasatya/restaurant-api/internal/domain/entity"
)

// Store is safe for concurrent use. Values are copied in and out so callers
// never share state with the store.
type Store struct {
	mu sync.RWMutex

	roles       map[int64]string
	users       map[int64]entity.User
	restaurants map[int64]entity.Restaurant
	dishes      map[int64]entity.Dish

	userSeq       int64
	restaurantSeq int64
	dishSeq       int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		roles: map[int64]string{
			1: entity.RoleUser,
			2: entity.RoleManager,
			3: entity.RoleAdmin,
		},
		users:       make(map[int64]entity.User),
		restaurants: make(map[int64]entity.Restaurant),
		dishes:      make(map[int64]entity.Dish),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// RoleID resolves a role name to its id, or 0 when unknown.
func (s *Store) RoleID(name string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, n := range s.roles {
		if n == name {
			return id
		}
	}
	return 0
}

func (s *Store) Users() *UserRepository             { return &UserRepository{s: s} }
func (s *Store) Restaurants() *RestaurantRepository { return &RestaurantRepository{s: s} }
func (s *Store) Dishes() *DishRepository            { return &DishRepository{s: s} }
