package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
)

type EmployeeRepository interface {
	// CreateWithUser inserts the user and the employee atomically.
	CreateWithUser(ctx context.Context, user *domain.User, employee *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	// GetByUserID returns (nil, nil) when the user is not an employee.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, id int64, phone, position string) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type CreateEmployeeInput struct {
	User     CreateUserInput
	Phone    string
	Position string
}

type UpdateEmployeeInput struct {
	Phone    *string
	Position *string
}

type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, id int64, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}
