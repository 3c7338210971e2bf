package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type restaurantService struct {
	repo     ports.RestaurantRepository
	userRepo ports.UserRepository
}

func NewRestaurantService(repo ports.RestaurantRepository, userRepo ports.UserRepository) ports.RestaurantService {
	return &restaurantService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Create registers a restaurant for an owner in the restaurant_owner role
// who does not own one yet.
func (s *restaurantService) Create(ctx context.Context, input ports.CreateRestaurantInput) (*domain.Restaurant, error) {
	owner, err := s.userRepo.GetByID(ctx, input.OwnerID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if owner == nil {
		return nil, &domain.RuleError{Message: "Owner does not exist.", Err: domain.ErrUserNotFound}
	}
	if owner.Role != domain.RoleRestaurantOwner {
		return nil, &domain.RuleError{Message: "The specified owner is not part of the Restaurant group."}
	}

	existing, err := s.repo.GetByOwner(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	if existing != nil {
		return nil, &domain.RuleError{Message: "Owner already registered Restaurant."}
	}

	restaurant := &domain.Restaurant{
		Name:    input.Name,
		OwnerID: owner.ID,
	}
	if err := s.repo.Create(ctx, restaurant); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return nil, &domain.RuleError{Message: "Owner already registered Restaurant."}
		}
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}
	restaurant.Owner = owner
	return restaurant, nil
}

func (s *restaurantService) Get(ctx context.Context, id int64) (*domain.Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *restaurantService) List(ctx context.Context) ([]*domain.Restaurant, error) {
	return s.repo.List(ctx)
}

func (s *restaurantService) Rename(ctx context.Context, id int64, name string) (*domain.Restaurant, error) {
	return s.repo.UpdateName(ctx, id, name)
}

func (s *restaurantService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
