package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	// GetByOwner returns (nil, nil) when the user owns no restaurant.
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Restaurant, error)
	List(ctx context.Context) ([]*domain.Restaurant, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.Restaurant, error)
	Delete(ctx context.Context, id int64) error
}

type CreateRestaurantInput struct {
	Name    string
	OwnerID uuid.UUID
}

type RestaurantService interface {
	Create(ctx context.Context, input CreateRestaurantInput) (*domain.Restaurant, error)
	Get(ctx context.Context, id int64) (*domain.Restaurant, error)
	List(ctx context.Context) ([]*domain.Restaurant, error)
	Rename(ctx context.Context, id int64, name string) (*domain.Restaurant, error)
	Delete(ctx context.Context, id int64) error
}
