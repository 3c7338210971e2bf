// Package memory implements the repository ports on in-process maps. Unique
// constraints and cascades mirror the postgres schema.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
)

// Store holds every table behind one lock so batches are atomic.
type Store struct {
	mu sync.RWMutex

	users         map[uuid.UUID]*domain.User
	refreshTokens map[uuid.UUID]*domain.RefreshToken
	restaurants   map[int64]*domain.Restaurant
	menus         map[int64]*domain.Menu
	employees     map[int64]*domain.Employee
	votes         map[int64]*domain.Vote
	results       map[int64]*domain.MenuResult

	nextRestaurant int64
	nextMenu       int64
	nextEmployee   int64
	nextVote       int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:         make(map[uuid.UUID]*domain.User),
		refreshTokens: make(map[uuid.UUID]*domain.RefreshToken),
		restaurants:   make(map[int64]*domain.Restaurant),
		menus:         make(map[int64]*domain.Menu),
		employees:     make(map[int64]*domain.Employee),
		votes:         make(map[int64]*domain.Vote),
		results:       make(map[int64]*domain.MenuResult),
		now:           time.Now,
	}
}

func (s *Store) deleteMenuLocked(id int64) {
	delete(s.menus, id)
	delete(s.results, id)
	for vid, v := range s.votes {
		if v.MenuID == id {
			delete(s.votes, vid)
		}
	}
}

func (s *Store) deleteEmployeeLocked(id int64) {
	delete(s.employees, id)
	for vid, v := range s.votes {
		if v.EmployeeID == id {
			delete(s.votes, vid)
		}
	}
}

func (s *Store) deleteRestaurantLocked(id int64) {
	delete(s.restaurants, id)
	for mid, m := range s.menus {
		if m.RestaurantID == id {
			s.deleteMenuLocked(mid)
		}
	}
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}
