package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type employeeRepository struct {
	s *Store
}

func NewEmployeeRepository(s *Store) ports.EmployeeRepository {
	return &employeeRepository{s: s}
}

func (r *employeeRepository) CreateWithUser(ctx context.Context, user *domain.User, employee *domain.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.insertUserLocked(user); err != nil {
		return err
	}

	r.s.nextEmployee++
	employee.ID = r.s.nextEmployee
	employee.UserID = user.ID
	employee.CreatedAt = r.s.now()
	employee.UpdatedAt = employee.CreatedAt
	stored := *employee
	stored.User = nil
	r.s.employees[employee.ID] = &stored
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return r.s.employeeView(e), nil
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.employees {
		if e.UserID == userID {
			return r.s.employeeView(e), nil
		}
	}
	return nil, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var employees []*domain.Employee
	for _, e := range r.s.employees {
		employees = append(employees, r.s.employeeView(e))
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })
	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, id int64, phone, position string) (*domain.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	e.Phone = phone
	e.Position = position
	e.UpdatedAt = r.s.now()
	return r.s.employeeView(e), nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	r.s.deleteEmployeeLocked(id)
	return nil
}

func (s *Store) employeeView(e *domain.Employee) *domain.Employee {
	c := *e
	if u, ok := s.users[c.UserID]; ok {
		c.User = copyUser(u)
	}
	return &c
}
