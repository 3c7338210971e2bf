package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

var errMenuExists = &domain.RuleError{Message: "Menu for this restaurant already exists for the selected day."}

type menuService struct {
	repo           ports.MenuRepository
	restaurantRepo ports.RestaurantRepository
}

func NewMenuService(repo ports.MenuRepository, restaurantRepo ports.RestaurantRepository) ports.MenuService {
	return &menuService{
		repo:           repo,
		restaurantRepo: restaurantRepo,
	}
}

func (s *menuService) Create(ctx context.Context, input ports.CreateMenuInput) (*domain.Menu, error) {
	if _, err := s.restaurantRepo.GetByID(ctx, input.RestaurantID); err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			return nil, invalidPK("restaurant", input.RestaurantID)
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return s.publish(ctx, input.RestaurantID, input.Date, input.Items)
}

// Upload publishes a menu for the restaurant owned by the caller.
func (s *menuService) Upload(ctx context.Context, input ports.UploadMenuInput) (*domain.Menu, error) {
	restaurant, err := s.restaurantRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, &domain.RuleError{Message: "User's Restaurant does not exist."}
	}
	return s.publish(ctx, restaurant.ID, input.Date, input.Items)
}

func (s *menuService) publish(ctx context.Context, restaurantID int64, date domain.Date, items string) (*domain.Menu, error) {
	exists, err := s.repo.ExistsForRestaurant(ctx, restaurantID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check menu: %w", err)
	}
	if exists {
		return nil, errMenuExists
	}

	menu := &domain.Menu{
		RestaurantID: restaurantID,
		Date:         date,
		Items:        items,
	}
	if err := s.repo.Create(ctx, menu); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return nil, errMenuExists
		}
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}
	return menu, nil
}

func (s *menuService) Get(ctx context.Context, id int64) (*domain.Menu, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *menuService) List(ctx context.Context) ([]*domain.Menu, error) {
	return s.repo.List(ctx)
}

func (s *menuService) CurrentDay(ctx context.Context, asOf domain.Date) ([]*domain.Menu, error) {
	menus, err := s.repo.ListByDate(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	if len(menus) == 0 {
		return nil, domain.ErrNoMenusToday
	}
	return menus, nil
}

func (s *menuService) UpdateItems(ctx context.Context, id int64, items string) (*domain.Menu, error) {
	return s.repo.UpdateItems(ctx, id, items)
}

func (s *menuService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
