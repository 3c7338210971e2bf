package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

func TestMenuCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	restaurant := f.restaurant(t)

	menu, err := f.menus.Create(ctx, ports.CreateMenuInput{RestaurantID: restaurant.ID, Date: today, Items: "Pasta"})
	require.NoError(t, err)
	assert.True(t, menu.Date.Equal(today))

	_, err = f.menus.Create(ctx, ports.CreateMenuInput{RestaurantID: restaurant.ID, Date: today, Items: "Pizza"})
	var rule *domain.RuleError
	require.ErrorAs(t, err, &rule)
	assert.Equal(t, "Menu for this restaurant already exists for the selected day.", rule.Message)

	// Another day is fine.
	_, err = f.menus.Create(ctx, ports.CreateMenuInput{RestaurantID: restaurant.ID, Date: today.AddDays(1), Items: "Pizza"})
	require.NoError(t, err)

	_, err = f.menus.Create(ctx, ports.CreateMenuInput{RestaurantID: 777, Date: today, Items: "Pizza"})
	requireValidation(t, err, "restaurant", `Invalid pk "777" - object does not exist.`)
}

func TestMenuUpload(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	restaurant := f.restaurant(t)

	menu, err := f.menus.Upload(ctx, ports.UploadMenuInput{OwnerID: restaurant.OwnerID, Date: today, Items: "Tacos"})
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, menu.RestaurantID)

	_, err = f.menus.Upload(ctx, ports.UploadMenuInput{OwnerID: restaurant.OwnerID, Date: today, Items: "Burritos"})
	var rule *domain.RuleError
	require.ErrorAs(t, err, &rule)
	assert.Equal(t, "Menu for this restaurant already exists for the selected day.", rule.Message)

	owner := f.user(t, domain.RoleRestaurantOwner)
	_, err = f.menus.Upload(ctx, ports.UploadMenuInput{OwnerID: owner.ID, Date: today, Items: "Tacos"})
	require.ErrorAs(t, err, &rule)
	assert.Equal(t, "User's Restaurant does not exist.", rule.Message)
}

func TestMenuCurrentDay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.menus.CurrentDay(ctx, today)
	require.ErrorIs(t, err, domain.ErrNoMenusToday)

	a := f.menu(t, today)
	f.menu(t, today.AddDays(-1))
	b := f.menu(t, today)

	menus, err := f.menus.CurrentDay(ctx, today)
	require.NoError(t, err)
	require.Len(t, menus, 2)
	assert.Equal(t, a.ID, menus[0].ID)
	assert.Equal(t, b.ID, menus[1].ID)
}

func TestMenuUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	menu := f.menu(t, today)

	updated, err := f.menus.UpdateItems(ctx, menu.ID, "Steak")
	require.NoError(t, err)
	assert.Equal(t, "Steak", updated.Items)

	require.NoError(t, f.menus.Delete(ctx, menu.ID))
	require.ErrorIs(t, f.menus.Delete(ctx, menu.ID), domain.ErrMenuNotFound)
}
