package memory

import (
	"context"
	"sort"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type voteRepository struct {
	s *Store
}

func NewVoteRepository(s *Store) ports.VoteRepository {
	return &voteRepository{s: s}
}

// CreateBatch checks the whole batch before storing any vote.
func (r *voteRepository) CreateBatch(ctx context.Context, votes []*domain.Vote) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	type pair struct{ employee, menu int64 }
	taken := make(map[pair]bool, len(r.s.votes)+len(votes))
	for _, v := range r.s.votes {
		taken[pair{v.EmployeeID, v.MenuID}] = true
	}
	for _, v := range votes {
		if _, ok := r.s.employees[v.EmployeeID]; !ok {
			return domain.ErrEmployeeNotFound
		}
		if _, ok := r.s.menus[v.MenuID]; !ok {
			return domain.ErrMenuNotFound
		}
		key := pair{v.EmployeeID, v.MenuID}
		if taken[key] {
			return &domain.ConflictError{Resource: "vote", MenuID: v.MenuID}
		}
		taken[key] = true
	}

	now := r.s.now()
	for _, v := range votes {
		r.s.nextVote++
		v.ID = r.s.nextVote
		v.CreatedAt = now
		v.UpdatedAt = now
		c := *v
		r.s.votes[v.ID] = &c
	}
	return nil
}

func (r *voteRepository) HasVoted(ctx context.Context, employeeID, menuID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, v := range r.s.votes {
		if v.EmployeeID == employeeID && v.MenuID == menuID {
			return true, nil
		}
	}
	return false, nil
}

func (r *voteRepository) GetByID(ctx context.Context, id int64) (*domain.Vote, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.votes[id]
	if !ok {
		return nil, domain.ErrVoteNotFound
	}
	c := *v
	return &c, nil
}

func (r *voteRepository) List(ctx context.Context) ([]*domain.Vote, error) {
	return r.filter(func(*domain.Vote) bool { return true }), nil
}

func (r *voteRepository) ListByDate(ctx context.Context, date domain.Date) ([]*domain.Vote, error) {
	return r.filter(func(v *domain.Vote) bool {
		m, ok := r.s.menus[v.MenuID]
		return ok && m.Date.Equal(date)
	}), nil
}

func (r *voteRepository) ListByEmployeeAndDate(ctx context.Context, employeeID int64, date domain.Date) ([]*domain.Vote, error) {
	return r.filter(func(v *domain.Vote) bool {
		m, ok := r.s.menus[v.MenuID]
		return ok && v.EmployeeID == employeeID && m.Date.Equal(date)
	}), nil
}

func (r *voteRepository) UpdatePoints(ctx context.Context, id int64, points int) (*domain.Vote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.votes[id]
	if !ok {
		return nil, domain.ErrVoteNotFound
	}
	v.Points = points
	v.UpdatedAt = r.s.now()
	c := *v
	return &c, nil
}

func (r *voteRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.votes[id]; !ok {
		return domain.ErrVoteNotFound
	}
	delete(r.s.votes, id)
	return nil
}

// filter runs keep under the read lock and returns matches ordered by id.
func (r *voteRepository) filter(keep func(*domain.Vote) bool) []*domain.Vote {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var votes []*domain.Vote
	for _, v := range r.s.votes {
		if keep(v) {
			c := *v
			votes = append(votes, &c)
		}
	}
	sort.Slice(votes, func(i, j int) bool { return votes[i].ID < votes[j].ID })
	return votes
}
