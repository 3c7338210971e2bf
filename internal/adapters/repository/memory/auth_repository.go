package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type authRepository struct {
	s *Store
}

func NewAuthRepository(s *Store) ports.AuthRepository {
	return &authRepository{s: s}
}

func (r *authRepository) StoreRefreshToken(ctx context.Context, token *domain.RefreshToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[token.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	token.ID = uuid.New()
	token.CreatedAt = r.s.now()
	c := *token
	r.s.refreshTokens[token.ID] = &c
	return nil
}

func (r *authRepository) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, t := range r.s.refreshTokens {
		if t.TokenHash == tokenHash {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (r *authRepository) RevokeRefreshToken(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if t, ok := r.s.refreshTokens[id]; ok {
		t.Revoked = true
	}
	return nil
}

func (r *authRepository) DeleteExpiredRefreshTokens(ctx context.Context, before time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, t := range r.s.refreshTokens {
		if t.Revoked || t.ExpiresAt.Before(before) {
			delete(r.s.refreshTokens, id)
			n++
		}
	}
	return n, nil
}
