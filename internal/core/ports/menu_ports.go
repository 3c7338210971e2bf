package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
)

type MenuRepository interface {
	Create(ctx context.Context, menu *domain.Menu) error
	GetByID(ctx context.Context, id int64) (*domain.Menu, error)
	// GetForDate returns domain.ErrMenuNotFound both for a missing id and for
	// a menu published on another day.
	GetForDate(ctx context.Context, id int64, date domain.Date) (*domain.Menu, error)
	ExistsForRestaurant(ctx context.Context, restaurantID int64, date domain.Date) (bool, error)
	List(ctx context.Context) ([]*domain.Menu, error)
	ListByDate(ctx context.Context, date domain.Date) ([]*domain.Menu, error)
	UpdateItems(ctx context.Context, id int64, items string) (*domain.Menu, error)
	Delete(ctx context.Context, id int64) error
}

type CreateMenuInput struct {
	RestaurantID int64
	Date         domain.Date
	Items        string
}

type UploadMenuInput struct {
	OwnerID uuid.UUID
	Date    domain.Date
	Items   string
}

type MenuService interface {
	Create(ctx context.Context, input CreateMenuInput) (*domain.Menu, error)
	Upload(ctx context.Context, input UploadMenuInput) (*domain.Menu, error)
	Get(ctx context.Context, id int64) (*domain.Menu, error)
	List(ctx context.Context) ([]*domain.Menu, error)
	CurrentDay(ctx context.Context, asOf domain.Date) ([]*domain.Menu, error)
	UpdateItems(ctx context.Context, id int64, items string) (*domain.Menu, error)
	Delete(ctx context.Context, id int64) error
}
