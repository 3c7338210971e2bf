package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type userRepository struct {
	s *Store
}

func NewUserRepository(s *Store) ports.UserRepository {
	return &userRepository{s: s}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Email == email }), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Username == username }), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return r.find(func(u *domain.User) bool { return u.ID == parsed }), nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var users []*domain.User
	for _, u := range r.s.users {
		if u.DeletedAt == nil {
			users = append(users, copyUser(u))
		}
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.Before(users[j].CreatedAt)
		}
		return users[i].Username < users[j].Username
	})
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.insertUserLocked(user)
}

func (r *userRepository) find(match func(*domain.User) bool) *domain.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.DeletedAt == nil && match(u) {
			return copyUser(u)
		}
	}
	return nil
}

func (s *Store) insertUserLocked(user *domain.User) error {
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return &domain.ConflictError{Resource: "user"}
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = s.now()
	s.users[user.ID] = copyUser(user)
	return nil
}
