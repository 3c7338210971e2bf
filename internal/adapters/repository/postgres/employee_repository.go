package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

const employeeSelect = `
	SELECT e.id, e.user_id, e.phone, e.position, e.created_at, e.updated_at,
	       u.id, u.username, u.email, u.first_name, u.last_name, u.password_hash, u.role, u.created_at
	FROM employees e
	JOIN users u ON u.id = e.user_id
`

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) ports.EmployeeRepository {
	return &employeeRepository{
		db: db,
	}
}

func (r *employeeRepository) CreateWithUser(ctx context.Context, user *domain.User, employee *domain.Employee) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertUser(ctx, tx, user); err != nil {
		return err
	}

	query := `
		INSERT INTO employees (user_id, phone, position)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	employee.UserID = user.ID
	err = tx.QueryRowContext(ctx, query, employee.UserID, employee.Phone, employee.Position).
		Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Resource: "employee", Err: err}
		}
		return fmt.Errorf("failed to insert employee: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := scanEmployee(r.db.QueryRowContext(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Employee, error) {
	employee, err := scanEmployee(r.db.QueryRowContext(ctx, employeeSelect+` WHERE e.user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, employeeSelect+` ORDER BY e.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}
	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, id int64, phone, position string) (*domain.Employee, error) {
	query := `UPDATE employees SET phone = $1, position = $2, updated_at = NOW() WHERE id = $3`
	if err := execAffectingOne(ctx, r.db, domain.ErrEmployeeNotFound, query, phone, position, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, domain.ErrEmployeeNotFound, `DELETE FROM employees WHERE id = $1`, id)
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	employee := &domain.Employee{User: &domain.User{}}
	u := employee.User
	err := row.Scan(
		&employee.ID, &employee.UserID, &employee.Phone, &employee.Position, &employee.CreatedAt, &employee.UpdatedAt,
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return employee, nil
}
