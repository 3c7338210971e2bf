package memory

import (
	"context"
	"sort"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type menuRepository struct {
	s *Store
}

func NewMenuRepository(s *Store) ports.MenuRepository {
	return &menuRepository{s: s}
}

func (r *menuRepository) Create(ctx context.Context, menu *domain.Menu) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.restaurants[menu.RestaurantID]; !ok {
		return domain.ErrRestaurantNotFound
	}
	for _, m := range r.s.menus {
		if m.RestaurantID == menu.RestaurantID && m.Date.Equal(menu.Date) {
			return &domain.ConflictError{Resource: "menu"}
		}
	}

	r.s.nextMenu++
	menu.ID = r.s.nextMenu
	menu.CreatedAt = r.s.now()
	menu.UpdatedAt = menu.CreatedAt
	stored := *menu
	stored.Restaurant = nil
	r.s.menus[menu.ID] = &stored
	return nil
}

func (r *menuRepository) GetByID(ctx context.Context, id int64) (*domain.Menu, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.menus[id]
	if !ok {
		return nil, domain.ErrMenuNotFound
	}
	c := *m
	return &c, nil
}

func (r *menuRepository) GetForDate(ctx context.Context, id int64, date domain.Date) (*domain.Menu, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.Date.Equal(date) {
		return nil, domain.ErrMenuNotFound
	}
	return m, nil
}

func (r *menuRepository) ExistsForRestaurant(ctx context.Context, restaurantID int64, date domain.Date) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.menus {
		if m.RestaurantID == restaurantID && m.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *menuRepository) List(ctx context.Context) ([]*domain.Menu, error) {
	return r.filter(func(*domain.Menu) bool { return true }), nil
}

func (r *menuRepository) ListByDate(ctx context.Context, date domain.Date) ([]*domain.Menu, error) {
	return r.filter(func(m *domain.Menu) bool { return m.Date.Equal(date) }), nil
}

func (r *menuRepository) UpdateItems(ctx context.Context, id int64, items string) (*domain.Menu, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.menus[id]
	if !ok {
		return nil, domain.ErrMenuNotFound
	}
	m.Items = items
	m.UpdatedAt = r.s.now()
	c := *m
	return &c, nil
}

func (r *menuRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.menus[id]; !ok {
		return domain.ErrMenuNotFound
	}
	r.s.deleteMenuLocked(id)
	return nil
}

func (r *menuRepository) filter(keep func(*domain.Menu) bool) []*domain.Menu {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var menus []*domain.Menu
	for _, m := range r.s.menus {
		if keep(m) {
			c := *m
			menus = append(menus, &c)
		}
	}
	sort.Slice(menus, func(i, j int) bool { return menus[i].ID < menus[j].ID })
	return menus
}
