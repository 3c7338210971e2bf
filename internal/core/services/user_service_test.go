package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
	"golang.org/x/crypto/bcrypt"
)

func TestUserCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	input := ports.CreateUserInput{
		Username:  "jane.doe",
		Password:  "Secret@123",
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      domain.RoleAdmin,
	}
	user, err := f.users.Create(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, input.Password, user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)))

	got, err := f.users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe", got.Username)

	dupUsername := input
	dupUsername.Email = "other@example.com"
	_, err = f.users.Create(ctx, dupUsername)
	requireValidation(t, err, "username", "This username is already taken.")

	dupEmail := input
	dupEmail.Username = "jane2"
	_, err = f.users.Create(ctx, dupEmail)
	requireValidation(t, err, "email", "This email address is already in use.")
}

func TestUserCreate_InvalidRole(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.Create(context.Background(), ports.CreateUserInput{
		Username: "someone",
		Password: "Secret@123",
		Email:    "someone@example.com",
		Role:     "chef",
	})
	requireValidation(t, err, "role", `"chef" is not a valid choice.`)
}

func TestUserGetByID_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
