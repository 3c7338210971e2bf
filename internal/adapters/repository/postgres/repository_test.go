package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/vncsmyrnk/lunchvote/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
)

var today = domain.NewDate(2024, time.June, 3)

func TestVoteRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := &seed{db: db}
	votes := repo.NewVoteRepository(db)

	employee := s.employee(t)
	a, b, c := s.menu(t, today), s.menu(t, today), s.menu(t, today)
	old := s.menu(t, today.AddDays(-1))

	// 1. A batch is stored in order
	batch := []*domain.Vote{
		{EmployeeID: employee.ID, MenuID: b.ID, Points: 3},
		{EmployeeID: employee.ID, MenuID: a.ID, Points: 2},
	}
	require.NoError(t, votes.CreateBatch(ctx, batch))
	assert.Less(t, batch[0].ID, batch[1].ID)

	voted, err := votes.HasVoted(ctx, employee.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, voted)
	voted, err = votes.HasVoted(ctx, employee.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, voted)

	// 2. A conflicting batch leaves nothing behind
	err = votes.CreateBatch(ctx, []*domain.Vote{
		{EmployeeID: employee.ID, MenuID: c.ID, Points: 1},
		{EmployeeID: employee.ID, MenuID: a.ID, Points: 1},
	})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, a.ID, conflict.MenuID)

	voted, err = votes.HasVoted(ctx, employee.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, voted)

	// 3. Day listings only include that day's menus
	require.NoError(t, votes.CreateBatch(ctx, []*domain.Vote{{EmployeeID: employee.ID, MenuID: old.ID, Points: 1}}))

	daily, err := votes.ListByDate(ctx, today)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, b.ID, daily[0].MenuID)
	assert.Equal(t, a.ID, daily[1].MenuID)

	mine, err := votes.ListByEmployeeAndDate(ctx, employee.ID, today.AddDays(-1))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, old.ID, mine[0].MenuID)

	// 4. Admin operations
	updated, err := votes.UpdatePoints(ctx, batch[0].ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Points)

	require.NoError(t, votes.Delete(ctx, batch[0].ID))
	_, err = votes.GetByID(ctx, batch[0].ID)
	require.ErrorIs(t, err, domain.ErrVoteNotFound)
	require.ErrorIs(t, votes.Delete(ctx, batch[0].ID), domain.ErrVoteNotFound)
}

func TestMenuRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := &seed{db: db}
	menus := repo.NewMenuRepository(db)

	menu := s.menu(t, today)

	got, err := menus.GetForDate(ctx, menu.ID, today)
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(today))
	assert.Equal(t, "Soup", got.Items)

	_, err = menus.GetForDate(ctx, menu.ID, today.AddDays(1))
	require.ErrorIs(t, err, domain.ErrMenuNotFound)

	exists, err := menus.ExistsForRestaurant(ctx, menu.RestaurantID, today)
	require.NoError(t, err)
	assert.True(t, exists)

	err = menus.Create(ctx, &domain.Menu{RestaurantID: menu.RestaurantID, Date: today, Items: "Again"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)

	err = menus.Create(ctx, &domain.Menu{RestaurantID: 9999, Date: today, Items: "Nowhere"})
	require.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	listed, err := menus.ListByDate(ctx, today)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestUserAndEmployeeRepositories(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := &seed{db: db}
	users := repo.NewUserRepository(db)
	employees := repo.NewEmployeeRepository(db)

	employee := s.employee(t)

	byUser, err := employees.GetByUserID(ctx, employee.UserID)
	require.NoError(t, err)
	require.NotNil(t, byUser)
	assert.Equal(t, employee.ID, byUser.ID)
	assert.Equal(t, domain.RoleEmployee, byUser.User.Role)

	none, err := employees.GetByUserID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, none)

	// A failed employee insert does not leave its user behind.
	dup := &domain.User{Username: byUser.User.Username, Email: "fresh@example.com", PasswordHash: "x", Role: domain.RoleEmployee}
	err = employees.CreateWithUser(ctx, dup, &domain.Employee{Phone: "1", Position: "x"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)

	found, err := users.GetByEmail(ctx, "fresh@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)

	updated, err := employees.Update(ctx, employee.ID, "+5511900000000", "Lead")
	require.NoError(t, err)
	assert.Equal(t, "Lead", updated.Position)
}

func TestMenuResultRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := &seed{db: db}
	votes := repo.NewVoteRepository(db)
	results := repo.NewMenuResultRepository(db)

	alice, bob := s.employee(t), s.employee(t)
	a, b := s.menu(t, today), s.menu(t, today)

	require.NoError(t, votes.CreateBatch(ctx, []*domain.Vote{
		{EmployeeID: alice.ID, MenuID: a.ID, Points: 3},
		{EmployeeID: bob.ID, MenuID: a.ID, Points: 2},
	}))

	n, err := results.SummarizeDay(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	stored, err := results.ListByDate(ctx, today)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, a.ID, stored[0].MenuID)
	assert.Equal(t, int64(5), stored[0].Points)
	assert.Equal(t, int64(2), stored[0].VoteCount)
	assert.Equal(t, b.ID, stored[1].MenuID)
	assert.Equal(t, int64(0), stored[1].Points)
}

func TestAuthRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := &seed{db: db}
	auth := repo.NewAuthRepository(db)
	user := s.user(t, domain.RoleAdmin)

	token := &domain.RefreshToken{UserID: user.ID, TokenHash: "abc", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, auth.StoreRefreshToken(ctx, token))

	got, err := auth.GetRefreshTokenByHash(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.UserID)

	require.NoError(t, auth.RevokeRefreshToken(ctx, got.ID))
	n, err := auth.DeleteExpiredRefreshTokens(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	missing, err := auth.GetRefreshTokenByHash(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
