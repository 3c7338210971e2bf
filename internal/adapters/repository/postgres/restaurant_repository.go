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

const restaurantSelect = `
	SELECT r.id, r.name, r.owner_id, r.created_at, r.updated_at,
	       u.id, u.username, u.email, u.first_name, u.last_name, u.password_hash, u.role, u.created_at
	FROM restaurants r
	JOIN users u ON u.id = r.owner_id
`

type restaurantRepository struct {
	db *sql.DB
}

func NewRestaurantRepository(db *sql.DB) ports.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	query := `
		INSERT INTO restaurants (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, restaurant.Name, restaurant.OwnerID).
		Scan(&restaurant.ID, &restaurant.CreatedAt, &restaurant.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Resource: "restaurant", Err: err}
		}
		return fmt.Errorf("failed to insert restaurant: %w", err)
	}
	return nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	restaurant, err := scanRestaurant(r.db.QueryRowContext(ctx, restaurantSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return restaurant, nil
}

func (r *restaurantRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Restaurant, error) {
	restaurant, err := scanRestaurant(r.db.QueryRowContext(ctx, restaurantSelect+` WHERE r.owner_id = $1`, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return restaurant, nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]*domain.Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, restaurantSelect+` ORDER BY r.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []*domain.Restaurant
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurants: %w", err)
	}
	return restaurants, nil
}

func (r *restaurantRepository) UpdateName(ctx context.Context, id int64, name string) (*domain.Restaurant, error) {
	query := `UPDATE restaurants SET name = $1, updated_at = NOW() WHERE id = $2`
	if err := execAffectingOne(ctx, r.db, domain.ErrRestaurantNotFound, query, name, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *restaurantRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, domain.ErrRestaurantNotFound, `DELETE FROM restaurants WHERE id = $1`, id)
}

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	restaurant := &domain.Restaurant{Owner: &domain.User{}}
	owner := restaurant.Owner
	err := row.Scan(
		&restaurant.ID, &restaurant.Name, &restaurant.OwnerID, &restaurant.CreatedAt, &restaurant.UpdatedAt,
		&owner.ID, &owner.Username, &owner.Email, &owner.FirstName, &owner.LastName, &owner.PasswordHash, &owner.Role, &owner.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

// execAffectingOne runs an UPDATE or DELETE by primary key and reports
// notFound when no row matched.
func execAffectingOne(ctx context.Context, db *sql.DB, notFound error, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
