package services

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type employeeService struct {
	repo     ports.EmployeeRepository
	userRepo ports.UserRepository
}

func NewEmployeeService(repo ports.EmployeeRepository, userRepo ports.UserRepository) ports.EmployeeService {
	return &employeeService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Create registers a new user in the employee role together with its
// employee record. Either both exist afterwards or neither does.
func (s *employeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	userInput := input.User
	userInput.Role = domain.RoleEmployee

	user, err := prepareUser(ctx, s.userRepo, userInput)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Phone:    input.Phone,
		Position: input.Position,
	}
	if err := s.repo.CreateWithUser(ctx, user, employee); err != nil {
		return nil, userConflict(err)
	}
	employee.User = user
	return employee, nil
}

func (s *employeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *employeeService) Update(ctx context.Context, id int64, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	phone, position := current.Phone, current.Position
	if input.Phone != nil {
		phone = *input.Phone
	}
	if input.Position != nil {
		position = *input.Position
	}

	updated, err := s.repo.Update(ctx, id, phone, position)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return updated, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
