package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

const menuColumns = `id, restaurant_id, menu_date, items, created_at, updated_at`

type menuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) ports.MenuRepository {
	return &menuRepository{
		db: db,
	}
}

func (r *menuRepository) Create(ctx context.Context, menu *domain.Menu) error {
	query := `
		INSERT INTO menus (restaurant_id, menu_date, items)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, menu.RestaurantID, menu.Date, menu.Items).
		Scan(&menu.ID, &menu.CreatedAt, &menu.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Resource: "menu", Err: err}
		}
		if isForeignKeyViolation(err) {
			return domain.ErrRestaurantNotFound
		}
		return fmt.Errorf("failed to insert menu: %w", err)
	}
	return nil
}

func (r *menuRepository) GetByID(ctx context.Context, id int64) (*domain.Menu, error) {
	query := `SELECT ` + menuColumns + ` FROM menus WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *menuRepository) GetForDate(ctx context.Context, id int64, date domain.Date) (*domain.Menu, error) {
	query := `SELECT ` + menuColumns + ` FROM menus WHERE id = $1 AND menu_date = $2`
	return r.getOne(ctx, query, id, date)
}

func (r *menuRepository) ExistsForRestaurant(ctx context.Context, restaurantID int64, date domain.Date) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM menus WHERE restaurant_id = $1 AND menu_date = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, restaurantID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check menu: %w", err)
	}
	return exists, nil
}

func (r *menuRepository) List(ctx context.Context) ([]*domain.Menu, error) {
	return r.list(ctx, `SELECT `+menuColumns+` FROM menus ORDER BY id`)
}

func (r *menuRepository) ListByDate(ctx context.Context, date domain.Date) ([]*domain.Menu, error) {
	return r.list(ctx, `SELECT `+menuColumns+` FROM menus WHERE menu_date = $1 ORDER BY id`, date)
}

func (r *menuRepository) UpdateItems(ctx context.Context, id int64, items string) (*domain.Menu, error) {
	query := `UPDATE menus SET items = $1, updated_at = NOW() WHERE id = $2`
	if err := execAffectingOne(ctx, r.db, domain.ErrMenuNotFound, query, items, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *menuRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, domain.ErrMenuNotFound, `DELETE FROM menus WHERE id = $1`, id)
}

func (r *menuRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Menu, error) {
	menu, err := scanMenu(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return menu, nil
}

func (r *menuRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Menu, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	defer rows.Close()

	var menus []*domain.Menu
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		menus = append(menus, menu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menus: %w", err)
	}
	return menus, nil
}

func scanMenu(row rowScanner) (*domain.Menu, error) {
	var menu domain.Menu
	if err := row.Scan(&menu.ID, &menu.RestaurantID, &menu.Date, &menu.Items, &menu.CreatedAt, &menu.UpdatedAt); err != nil {
		return nil, err
	}
	return &menu, nil
}
