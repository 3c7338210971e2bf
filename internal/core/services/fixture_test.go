package services_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/lunchvote/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
	"github.com/vncsmyrnk/lunchvote/internal/core/services"
)

var today = domain.NewDate(2024, time.June, 3)

type recordingMetrics struct {
	v1, v2 atomic.Int64
}

func (m *recordingMetrics) VotesCast(version domain.APIVersion, count int) {
	if version == domain.V2 {
		m.v2.Add(int64(count))
		return
	}
	m.v1.Add(int64(count))
}

type fixture struct {
	store *memory.Store

	userRepo       ports.UserRepository
	restaurantRepo ports.RestaurantRepository
	menuRepo       ports.MenuRepository
	employeeRepo   ports.EmployeeRepository
	voteRepo       ports.VoteRepository

	users       ports.UserService
	restaurants ports.RestaurantService
	menus       ports.MenuService
	employees   ports.EmployeeService
	votes       ports.VoteService
	metrics     *recordingMetrics

	seq int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	f := &fixture{
		store:          store,
		userRepo:       memory.NewUserRepository(store),
		restaurantRepo: memory.NewRestaurantRepository(store),
		menuRepo:       memory.NewMenuRepository(store),
		employeeRepo:   memory.NewEmployeeRepository(store),
		voteRepo:       memory.NewVoteRepository(store),
		metrics:        &recordingMetrics{},
	}
	f.users = services.NewUserService(f.userRepo)
	f.restaurants = services.NewRestaurantService(f.restaurantRepo, f.userRepo)
	f.menus = services.NewMenuService(f.menuRepo, f.restaurantRepo)
	f.employees = services.NewEmployeeService(f.employeeRepo, f.userRepo)
	f.votes = services.NewVoteService(f.menuRepo, f.voteRepo, f.employeeRepo, f.metrics)
	return f
}

func (f *fixture) next() int {
	f.seq++
	return f.seq
}

func (f *fixture) user(t *testing.T, role domain.Role) *domain.User {
	t.Helper()
	n := f.next()
	user, err := f.users.Create(context.Background(), ports.CreateUserInput{
		Username: fmt.Sprintf("user%d", n),
		Password: "Secret@123",
		Email:    fmt.Sprintf("user%d@example.com", n),
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) employee(t *testing.T) *domain.Employee {
	t.Helper()
	n := f.next()
	employee, err := f.employees.Create(context.Background(), ports.CreateEmployeeInput{
		User: ports.CreateUserInput{
			Username: fmt.Sprintf("employee%d", n),
			Password: "Secret@123",
			Email:    fmt.Sprintf("employee%d@example.com", n),
		},
		Phone:    "+5511999999999",
		Position: "Developer",
	})
	require.NoError(t, err)
	return employee
}

func (f *fixture) restaurant(t *testing.T) *domain.Restaurant {
	t.Helper()
	owner := f.user(t, domain.RoleRestaurantOwner)
	restaurant, err := f.restaurants.Create(context.Background(), ports.CreateRestaurantInput{
		Name:    fmt.Sprintf("Restaurant %s", owner.Username),
		OwnerID: owner.ID,
	})
	require.NoError(t, err)
	return restaurant
}

func (f *fixture) menu(t *testing.T, date domain.Date) *domain.Menu {
	t.Helper()
	menu, err := f.menus.Create(context.Background(), ports.CreateMenuInput{
		RestaurantID: f.restaurant(t).ID,
		Date:         date,
		Items:        "Soup, Salad",
	})
	require.NoError(t, err)
	return menu
}

func requireValidation(t *testing.T, err error, field, message string) {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, field, verr.Field)
	require.Equal(t, message, verr.Message)
}

func ptr[T any](v T) *T {
	return &v
}

func ranked(menuID int64, points int) domain.RankedMenu {
	return domain.RankedMenu{MenuID: ptr(menuID), Points: ptr(points)}
}

func castInput(userID uuid.UUID, req domain.CastRequest) ports.CastVoteInput {
	return ports.CastVoteInput{UserID: userID, AsOf: today, Request: req}
}
