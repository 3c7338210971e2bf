package memory

import (
	"context"
	"sort"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type menuResultRepository struct {
	s *Store
}

func NewMenuResultRepository(s *Store) ports.MenuResultRepository {
	return &menuResultRepository{s: s}
}

func (r *menuResultRepository) SummarizeDay(ctx context.Context, date domain.Date) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	var n int64
	for _, m := range r.s.menus {
		if !m.Date.Equal(date) {
			continue
		}
		result := &domain.MenuResult{MenuID: m.ID, Date: m.Date, LastUpdatedAt: now}
		for _, v := range r.s.votes {
			if v.MenuID == m.ID {
				result.Points += int64(v.Points)
				result.VoteCount++
			}
		}
		r.s.results[m.ID] = result
		n++
	}
	return n, nil
}

func (r *menuResultRepository) ListByDate(ctx context.Context, date domain.Date) ([]domain.MenuResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var results []domain.MenuResult
	for _, mr := range r.s.results {
		if mr.Date.Equal(date) {
			results = append(results, *mr)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Points != results[j].Points {
			return results[i].Points > results[j].Points
		}
		return results[i].MenuID < results[j].MenuID
	})
	return results, nil
}
