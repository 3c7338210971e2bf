package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/lunchvote/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
	"github.com/vncsmyrnk/lunchvote/internal/core/services"
)

var testSecret = []byte("test-secret")

type fakeVerifier struct {
	email string
}

func (v *fakeVerifier) Verify(ctx context.Context, token string, clientID string) (*ports.TokenPayload, error) {
	if token == "valid_token" {
		return &ports.TokenPayload{Email: v.email}, nil
	}
	return nil, assert.AnError
}

func newAuthService(f *fixture, cfg services.AuthConfig) *services.AuthService {
	if cfg.JWTSecret == nil {
		cfg.JWTSecret = testSecret
	}
	return services.NewAuthService(f.userRepo, memory.NewAuthRepository(f.store), &fakeVerifier{email: "user1@example.com"}, cfg)
}

func TestAuthFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.user(t, domain.RoleEmployee)
	svc := newAuthService(f, services.AuthConfig{})

	// 1. Login
	_, err := svc.Login(ctx, user.Username, "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredential)

	_, err = svc.Login(ctx, "nobody", "Secret@123")
	require.ErrorIs(t, err, domain.ErrInvalidCredential)

	pair, err := svc.Login(ctx, user.Username, "Secret@123")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	// 2. Authenticate
	authed, err := svc.Authenticate(ctx, pair.Access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
	assert.Equal(t, domain.RoleEmployee, authed.Role)

	// 3. Refresh
	access, err := svc.RefreshAccessToken(ctx, pair.Refresh)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, access)
	require.NoError(t, err)

	// 4. Logout revokes the refresh token
	require.NoError(t, svc.Logout(ctx, pair.Refresh))
	_, err = svc.RefreshAccessToken(ctx, pair.Refresh)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)

	n, err := svc.PruneRefreshTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestAuthenticate_Rejects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.user(t, domain.RoleAdmin)

	expired := newAuthService(f, services.AuthConfig{AccessTokenTTL: -time.Minute})
	pair, err := expired.Login(ctx, user.Username, "Secret@123")
	require.NoError(t, err)
	_, err = expired.Authenticate(ctx, pair.Access)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)

	svc := newAuthService(f, services.AuthConfig{})
	_, err = svc.Authenticate(ctx, "not-a-jwt")
	require.ErrorIs(t, err, domain.ErrUnauthenticated)

	other := newAuthService(f, services.AuthConfig{JWTSecret: []byte("other-secret")})
	pair, err = other.Login(ctx, user.Username, "Secret@123")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, pair.Access)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": user.ID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, unsigned)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestLoginWithGoogle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, domain.RoleEmployee)
	svc := newAuthService(f, services.AuthConfig{GoogleClientID: "client"})

	pair, err := svc.LoginWithGoogle(ctx, "valid_token")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)

	_, err = svc.LoginWithGoogle(ctx, "invalid_token")
	require.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestRefreshAccessToken_Unknown(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f, services.AuthConfig{})

	_, err := svc.RefreshAccessToken(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}
