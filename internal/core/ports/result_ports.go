package ports

import (
	"context"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
)

type MenuResultRepository interface {
	SummarizeDay(ctx context.Context, date domain.Date) (int64, error)
	ListByDate(ctx context.Context, date domain.Date) ([]domain.MenuResult, error)
}

type SummaryService interface {
	SnapshotDay(ctx context.Context, asOf domain.Date) ([]domain.MenuResult, error)
}
