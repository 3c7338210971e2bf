package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type summaryService struct {
	resultRepo ports.MenuResultRepository
}

func NewSummaryService(resultRepo ports.MenuResultRepository) ports.SummaryService {
	return &summaryService{
		resultRepo: resultRepo,
	}
}

// SnapshotDay stores the per-menu totals of asOf and returns the stored rows.
func (s *summaryService) SnapshotDay(ctx context.Context, asOf domain.Date) ([]domain.MenuResult, error) {
	n, err := s.resultRepo.SummarizeDay(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize %s: %w", asOf, err)
	}
	slog.Info("menu results summarized", "date", asOf.String(), "menus", n)

	results, err := s.resultRepo.ListByDate(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results for %s: %w", asOf, err)
	}
	return results, nil
}
