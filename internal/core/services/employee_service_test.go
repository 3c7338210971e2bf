package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

func TestEmployeeCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	employee, err := f.employees.Create(ctx, ports.CreateEmployeeInput{
		User: ports.CreateUserInput{
			Username: "worker",
			Password: "Secret@123",
			Email:    "worker@example.com",
			Role:     domain.RoleAdmin,
		},
		Phone:    "+5511988887777",
		Position: "QA",
	})
	require.NoError(t, err)
	require.NotNil(t, employee.User)
	assert.Equal(t, domain.RoleEmployee, employee.User.Role)
	assert.Equal(t, employee.User.ID, employee.UserID)

	stored, err := f.employees.Get(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "worker", stored.User.Username)

	_, err = f.employees.Create(ctx, ports.CreateEmployeeInput{
		User: ports.CreateUserInput{Username: "worker", Password: "Secret@123", Email: "new@example.com"},
	})
	requireValidation(t, err, "username", "This username is already taken.")

	employees, err := f.employees.List(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}

func TestEmployeeUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.employee(t)

	updated, err := f.employees.Update(ctx, employee.ID, ports.UpdateEmployeeInput{Position: ptr("Lead")})
	require.NoError(t, err)
	assert.Equal(t, "Lead", updated.Position)
	assert.Equal(t, employee.Phone, updated.Phone)

	_, err = f.employees.Update(ctx, 999, ports.UpdateEmployeeInput{Position: ptr("Lead")})
	require.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeDeleteRemovesVotes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.employee(t)
	menu := f.menu(t, today)

	_, err := f.votes.Cast(ctx, castInput(employee.UserID, domain.CastV1{MenuID: ptr(menu.ID)}))
	require.NoError(t, err)

	require.NoError(t, f.employees.Delete(ctx, employee.ID))

	_, err = f.votes.Results(ctx, today)
	require.ErrorIs(t, err, domain.ErrNoVotesToday)
}
