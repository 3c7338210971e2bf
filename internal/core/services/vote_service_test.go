package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
	"github.com/vncsmyrnk/lunchvote/internal/core/services"
)

func TestCastV1(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.employee(t)
	menu := f.menu(t, today)

	votes, err := f.votes.Cast(ctx, castInput(employee.UserID, domain.CastV1{MenuID: ptr(menu.ID)}))
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, menu.ID, votes[0].MenuID)
	assert.Equal(t, employee.ID, votes[0].EmployeeID)
	assert.Equal(t, domain.V1Points, votes[0].Points)
	assert.NotZero(t, votes[0].ID)
	assert.Equal(t, int64(1), f.metrics.v1.Load())

	// A second cast for the same menu is rejected.
	_, err = f.votes.Cast(ctx, castInput(employee.UserID, domain.CastV1{MenuID: ptr(menu.ID)}))
	requireValidation(t, err, "vote", "You have already cast your vote for this menu.")
	assert.Equal(t, int64(1), f.metrics.v1.Load())
}

func TestCastV1_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.employee(t)
	yesterday := f.menu(t, today.AddDays(-1))

	_, err := f.votes.Cast(ctx, castInput(employee.UserID, domain.CastV1{}))
	requireValidation(t, err, "menu_id", "Menu ID is required.")

	_, err = f.votes.Cast(ctx, castInput(employee.UserID, domain.CastV1{MenuID: ptr(int64(0))}))
	requireValidation(t, err, "menu_id", "Menu ID is required.")

	_, err = f.votes.Cast(ctx, castInput(employee.UserID, domain.CastV1{MenuID: ptr(yesterday.ID)}))
	requireValidation(t, err, "menu_id", fmt.Sprintf("Menu with ID %d not found or not available for today.", yesterday.ID))

	_, err = f.votes.Cast(ctx, castInput(employee.UserID, domain.CastV1{MenuID: ptr(int64(999))}))
	requireValidation(t, err, "menu_id", "Menu with ID 999 not found or not available for today.")
}

func TestCast_RequiresEmployee(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, domain.RoleAdmin)
	menu := f.menu(t, today)

	_, err := f.votes.Cast(context.Background(), castInput(admin.ID, domain.CastV1{MenuID: ptr(menu.ID)}))
	requireValidation(t, err, "role", "Attempt to cast a vote as an employee role.")
}

func TestCastV2(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.employee(t)
	a, b, c := f.menu(t, today), f.menu(t, today), f.menu(t, today)

	req := domain.CastV2{TopMenus: []domain.RankedMenu{ranked(a.ID, 3), ranked(b.ID, 2), ranked(c.ID, 1)}}
	votes, err := f.votes.Cast(ctx, castInput(employee.UserID, req))
	require.NoError(t, err)
	require.Len(t, votes, 3)
	assert.Equal(t, 3, votes[0].Points)
	assert.Equal(t, 2, votes[1].Points)
	assert.Equal(t, 1, votes[2].Points)
	assert.Equal(t, int64(3), f.metrics.v2.Load())

	mine, err := f.votes.MyVotes(ctx, employee.UserID, today)
	require.NoError(t, err)
	assert.Equal(t, []domain.MyVote{{MenuID: a.ID, Points: 3}, {MenuID: b.ID, Points: 2}, {MenuID: c.ID, Points: 1}}, mine)
}

func TestCastV2_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.employee(t)
	a, b, c := f.menu(t, today), f.menu(t, today), f.menu(t, today)
	old := f.menu(t, today.AddDays(-1))

	tests := []struct {
		name    string
		menus   []domain.RankedMenu
		field   string
		message string
	}{
		{
			name:    "too few entries",
			menus:   []domain.RankedMenu{ranked(a.ID, 3), ranked(b.ID, 2)},
			field:   "top_menus",
			message: "You must provide exactly 3 menus with respective points for version 2.",
		},
		{
			name:    "too many entries",
			menus:   []domain.RankedMenu{ranked(a.ID, 3), ranked(b.ID, 2), ranked(c.ID, 1), ranked(old.ID, 1)},
			field:   "top_menus",
			message: "You must provide exactly 3 menus with respective points for version 2.",
		},
		{
			name:    "points out of range",
			menus:   []domain.RankedMenu{ranked(a.ID, 4), ranked(b.ID, 2), ranked(c.ID, 1)},
			field:   "points",
			message: "Points must be 1, 2, or 3.",
		},
		{
			name:    "missing points",
			menus:   []domain.RankedMenu{{MenuID: ptr(a.ID)}, ranked(b.ID, 2), ranked(c.ID, 1)},
			field:   "points",
			message: "Points must be 1, 2, or 3.",
		},
		{
			name:    "duplicate points",
			menus:   []domain.RankedMenu{ranked(a.ID, 3), ranked(b.ID, 3), ranked(c.ID, 1)},
			field:   "points",
			message: "Points must be unique for each menu.",
		},
		{
			name:    "duplicate menus",
			menus:   []domain.RankedMenu{ranked(a.ID, 3), ranked(a.ID, 2), ranked(c.ID, 1)},
			field:   "menu_id",
			message: "Menu IDs must be unique.",
		},
		{
			name:    "missing menu id",
			menus:   []domain.RankedMenu{ranked(a.ID, 3), {Points: ptr(2)}, ranked(c.ID, 1)},
			field:   "menu_id",
			message: "Menu ID is required.",
		},
		{
			name:    "menu from another day",
			menus:   []domain.RankedMenu{ranked(a.ID, 3), ranked(b.ID, 2), ranked(old.ID, 1)},
			field:   "menu_id",
			message: fmt.Sprintf("Menu with ID %d not found or not available for today.", old.ID),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.votes.Cast(ctx, castInput(employee.UserID, domain.CastV2{TopMenus: tt.menus}))
			requireValidation(t, err, tt.field, tt.message)
		})
	}

	all, err := f.voteRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCastV2_AlreadyVotedWritesNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.employee(t)
	a, b, c := f.menu(t, today), f.menu(t, today), f.menu(t, today)

	_, err := f.votes.Cast(ctx, castInput(employee.UserID, domain.CastV1{MenuID: ptr(c.ID)}))
	require.NoError(t, err)

	req := domain.CastV2{TopMenus: []domain.RankedMenu{ranked(a.ID, 3), ranked(b.ID, 2), ranked(c.ID, 1)}}
	_, err = f.votes.Cast(ctx, castInput(employee.UserID, req))
	requireValidation(t, err, "vote", fmt.Sprintf("You have already cast your vote for this Menu with ID %d.", c.ID))

	all, err := f.voteRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// staleVoteRepository never reports an existing vote, so the duplicate is
// only caught by the store.
type staleVoteRepository struct {
	ports.VoteRepository
}

func (staleVoteRepository) HasVoted(context.Context, int64, int64) (bool, error) {
	return false, nil
}

func TestCast_StoreConflictMapsToAlreadyVoted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.employee(t)
	a, b, c := f.menu(t, today), f.menu(t, today), f.menu(t, today)

	svc := services.NewVoteService(f.menuRepo, staleVoteRepository{f.voteRepo}, f.employeeRepo, nil)

	_, err := svc.Cast(ctx, castInput(employee.UserID, domain.CastV1{MenuID: ptr(b.ID)}))
	require.NoError(t, err)

	_, err = svc.Cast(ctx, castInput(employee.UserID, domain.CastV1{MenuID: ptr(b.ID)}))
	requireValidation(t, err, "vote", "You have already cast your vote for this menu.")

	req := domain.CastV2{TopMenus: []domain.RankedMenu{ranked(a.ID, 3), ranked(b.ID, 2), ranked(c.ID, 1)}}
	_, err = svc.Cast(ctx, castInput(employee.UserID, req))
	requireValidation(t, err, "vote", fmt.Sprintf("You have already cast your vote for this Menu with ID %d.", b.ID))

	all, err := f.voteRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

type unknownRequest struct{}

func (unknownRequest) Version() domain.APIVersion { return "v9" }
func (unknownRequest) Malformed() error           { return nil }

func TestCast_UnsupportedRequest(t *testing.T) {
	f := newFixture(t)
	employee := f.employee(t)

	_, err := f.votes.Cast(context.Background(), castInput(employee.UserID, unknownRequest{}))
	requireValidation(t, err, "version", "Unsupported version.")
}

func TestResults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice, bob := f.employee(t), f.employee(t)
	a, b, c := f.menu(t, today), f.menu(t, today), f.menu(t, today)
	old := f.menu(t, today.AddDays(-1))

	_, err := f.votes.Results(ctx, today)
	require.ErrorIs(t, err, domain.ErrNoVotesToday)

	_, err = f.votes.Cast(ctx, castInput(alice.UserID, domain.CastV2{
		TopMenus: []domain.RankedMenu{ranked(b.ID, 3), ranked(a.ID, 2), ranked(c.ID, 1)},
	}))
	require.NoError(t, err)
	_, err = f.votes.Cast(ctx, castInput(bob.UserID, domain.CastV1{MenuID: ptr(a.ID)}))
	require.NoError(t, err)
	_, err = f.votes.Create(ctx, ports.CreateVoteInput{EmployeeID: bob.ID, MenuID: old.ID, Points: 3})
	require.NoError(t, err)

	results, err := f.votes.Results(ctx, today)
	require.NoError(t, err)
	require.Len(t, results.Menus, 3)

	// Menus appear in the order their first vote was stored.
	assert.Equal(t, []int64{b.ID, a.ID, c.ID}, []int64{results.Menus[0].MenuID, results.Menus[1].MenuID, results.Menus[2].MenuID})

	tallyA, ok := results.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, 3, tallyA.Points)
	assert.Equal(t, []domain.EmployeePoints{{EmployeeID: alice.ID, Points: 2}, {EmployeeID: bob.ID, Points: 1}}, tallyA.Votes)

	_, ok = results.Get(old.ID)
	assert.False(t, ok)
}

func TestMyVotes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.employee(t)
	menu := f.menu(t, today)

	_, err := f.votes.MyVotes(ctx, employee.UserID, today)
	require.ErrorIs(t, err, domain.ErrNoVoteFound)

	_, err = f.votes.Cast(ctx, castInput(employee.UserID, domain.CastV1{MenuID: ptr(menu.ID)}))
	require.NoError(t, err)

	mine, err := f.votes.MyVotes(ctx, employee.UserID, today)
	require.NoError(t, err)
	assert.Equal(t, []domain.MyVote{{MenuID: menu.ID, Points: 1}}, mine)

	_, err = f.votes.MyVotes(ctx, employee.UserID, today.AddDays(1))
	require.ErrorIs(t, err, domain.ErrNoVoteFound)
}

func TestVoteAdmin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.employee(t)
	menu := f.menu(t, today)

	_, err := f.votes.Create(ctx, ports.CreateVoteInput{EmployeeID: employee.ID, MenuID: menu.ID, Points: 0})
	requireValidation(t, err, "points", "Points must be 1, 2, or 3.")

	_, err = f.votes.Create(ctx, ports.CreateVoteInput{EmployeeID: 404, MenuID: menu.ID, Points: 1})
	requireValidation(t, err, "employee", `Invalid pk "404" - object does not exist.`)

	_, err = f.votes.Create(ctx, ports.CreateVoteInput{EmployeeID: employee.ID, MenuID: 404, Points: 1})
	requireValidation(t, err, "menu", `Invalid pk "404" - object does not exist.`)

	vote, err := f.votes.Create(ctx, ports.CreateVoteInput{EmployeeID: employee.ID, MenuID: menu.ID, Points: 2})
	require.NoError(t, err)

	_, err = f.votes.Create(ctx, ports.CreateVoteInput{EmployeeID: employee.ID, MenuID: menu.ID, Points: 1})
	requireValidation(t, err, "non_field_errors", "The fields employee, menu must make a unique set.")

	_, err = f.votes.UpdatePoints(ctx, vote.ID, 5)
	requireValidation(t, err, "points", "Points must be 1, 2, or 3.")

	updated, err := f.votes.UpdatePoints(ctx, vote.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Points)

	require.NoError(t, f.votes.Delete(ctx, vote.ID))
	_, err = f.votes.Get(ctx, vote.ID)
	require.ErrorIs(t, err, domain.ErrVoteNotFound)
}

func TestCast_MistypedPayload(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.employee(t)
	admin := f.user(t, domain.RoleAdmin)
	a, b, c := f.menu(t, today), f.menu(t, today), f.menu(t, today)

	v1 := func(body string) domain.CastV1 {
		var req domain.CastV1
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		return req
	}
	v2 := func(body string) domain.CastV2 {
		var req domain.CastV2
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		return req
	}

	t.Run("role is checked before the payload", func(t *testing.T) {
		_, err := f.votes.Cast(ctx, castInput(admin.ID, v1(`{"menu_id":"x"}`)))
		requireValidation(t, err, "role", "Attempt to cast a vote as an employee role.")

		_, err = f.votes.Cast(ctx, castInput(admin.ID, v2(`{"top_menus":"abc"}`)))
		requireValidation(t, err, "role", "Attempt to cast a vote as an employee role.")
	})

	t.Run("v1 menu_id that is not an integer", func(t *testing.T) {
		_, err := f.votes.Cast(ctx, castInput(employee.UserID, v1(`{"menu_id":"x"}`)))
		requireValidation(t, err, "menu_id", "A valid integer is required.")
	})

	t.Run("v2 top_menus that is not a list", func(t *testing.T) {
		_, err := f.votes.Cast(ctx, castInput(employee.UserID, v2(`{"top_menus":"abc"}`)))
		requireValidation(t, err, "top_menus", domain.TopMenusRequired)
	})

	t.Run("v2 points given as a string", func(t *testing.T) {
		body := fmt.Sprintf(`{"top_menus":[{"menu_id":%d,"points":"3"},{"menu_id":%d,"points":2},{"menu_id":%d,"points":1}]}`, a.ID, b.ID, c.ID)
		_, err := f.votes.Cast(ctx, castInput(employee.UserID, v2(body)))
		requireValidation(t, err, "points", "Points must be 1, 2, or 3.")
	})

	t.Run("v2 menu_id that is not an integer", func(t *testing.T) {
		body := fmt.Sprintf(`{"top_menus":[{"menu_id":%d,"points":3},{"menu_id":true,"points":2},{"menu_id":%d,"points":1}]}`, a.ID, c.ID)
		_, err := f.votes.Cast(ctx, castInput(employee.UserID, v2(body)))
		requireValidation(t, err, "menu_id", "A valid integer is required.")
	})

	t.Run("numeric strings are accepted as menu ids", func(t *testing.T) {
		votes, err := f.votes.Cast(ctx, castInput(employee.UserID, v1(fmt.Sprintf(`{"menu_id":"%d"}`, a.ID))))
		require.NoError(t, err)
		require.Len(t, votes, 1)
		assert.Equal(t, a.ID, votes[0].MenuID)
	})

	all, err := f.voteRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
