package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type restaurantRepository struct {
	s *Store
}

func NewRestaurantRepository(s *Store) ports.RestaurantRepository {
	return &restaurantRepository{s: s}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[restaurant.OwnerID]; !ok {
		return domain.ErrUserNotFound
	}
	for _, existing := range r.s.restaurants {
		if existing.OwnerID == restaurant.OwnerID {
			return &domain.ConflictError{Resource: "restaurant"}
		}
	}

	r.s.nextRestaurant++
	restaurant.ID = r.s.nextRestaurant
	restaurant.CreatedAt = r.s.now()
	restaurant.UpdatedAt = restaurant.CreatedAt
	stored := *restaurant
	stored.Owner = nil
	r.s.restaurants[restaurant.ID] = &stored
	return nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	restaurant, ok := r.s.restaurants[id]
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}
	return r.s.restaurantView(restaurant), nil
}

func (r *restaurantRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Restaurant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, restaurant := range r.s.restaurants {
		if restaurant.OwnerID == ownerID {
			return r.s.restaurantView(restaurant), nil
		}
	}
	return nil, nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]*domain.Restaurant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var restaurants []*domain.Restaurant
	for _, restaurant := range r.s.restaurants {
		restaurants = append(restaurants, r.s.restaurantView(restaurant))
	}
	sort.Slice(restaurants, func(i, j int) bool { return restaurants[i].ID < restaurants[j].ID })
	return restaurants, nil
}

func (r *restaurantRepository) UpdateName(ctx context.Context, id int64, name string) (*domain.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	restaurant, ok := r.s.restaurants[id]
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}
	restaurant.Name = name
	restaurant.UpdatedAt = r.s.now()
	return r.s.restaurantView(restaurant), nil
}

func (r *restaurantRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.restaurants[id]; !ok {
		return domain.ErrRestaurantNotFound
	}
	r.s.deleteRestaurantLocked(id)
	return nil
}

func (s *Store) restaurantView(restaurant *domain.Restaurant) *domain.Restaurant {
	c := *restaurant
	if owner, ok := s.users[c.OwnerID]; ok {
		c.Owner = copyUser(owner)
	}
	return &c
}
