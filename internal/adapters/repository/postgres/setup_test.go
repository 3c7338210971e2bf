package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	repo "github.com/vncsmyrnk/lunchvote/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
)

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

// setupDB starts a migrated database that lives for the duration of the test.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	container, connStr, err := setupPostgresContainer(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, repo.ApplyMigrations(ctx, db))
	return db
}

type seed struct {
	db    *sql.DB
	count int
}

func (s *seed) user(t *testing.T, role domain.Role) *domain.User {
	t.Helper()
	s.count++
	user := &domain.User{
		Username:     fmt.Sprintf("user%d", s.count),
		Email:        fmt.Sprintf("user%d@example.com", s.count),
		PasswordHash: "hash",
		Role:         role,
	}
	require.NoError(t, repo.NewUserRepository(s.db).Create(context.Background(), user))
	return user
}

func (s *seed) employee(t *testing.T) *domain.Employee {
	t.Helper()
	s.count++
	user := &domain.User{
		Username:     fmt.Sprintf("employee%d", s.count),
		Email:        fmt.Sprintf("employee%d@example.com", s.count),
		PasswordHash: "hash",
		Role:         domain.RoleEmployee,
	}
	employee := &domain.Employee{Phone: "+5511999999999", Position: "Dev"}
	require.NoError(t, repo.NewEmployeeRepository(s.db).CreateWithUser(context.Background(), user, employee))
	return employee
}

func (s *seed) menu(t *testing.T, date domain.Date) *domain.Menu {
	t.Helper()
	owner := s.user(t, domain.RoleRestaurantOwner)
	restaurant := &domain.Restaurant{Name: "R " + owner.Username, OwnerID: owner.ID}
	require.NoError(t, repo.NewRestaurantRepository(s.db).Create(context.Background(), restaurant))

	menu := &domain.Menu{RestaurantID: restaurant.ID, Date: date, Items: "Soup"}
	require.NoError(t, repo.NewMenuRepository(s.db).Create(context.Background(), menu))
	return menu
}
