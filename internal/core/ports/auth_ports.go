package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
)

type AuthRepository interface {
	StoreRefreshToken(ctx context.Context, token *domain.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id uuid.UUID) error
	// DeleteExpiredRefreshTokens removes revoked tokens and those expiring before the given time.
	DeleteExpiredRefreshTokens(ctx context.Context, before time.Time) (int64, error)
}

type TokenPayload struct {
	Email string
	Name  string
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string, clientID string) (*TokenPayload, error)
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	LoginWithGoogle(ctx context.Context, googleToken string) (*TokenPair, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	// Authenticate validates an access token and returns its active user.
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
	PruneRefreshTokens(ctx context.Context) (int64, error)
}
