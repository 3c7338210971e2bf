package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type menuResultRepository struct {
	db *sql.DB
}

func NewMenuResultRepository(db *sql.DB) ports.MenuResultRepository {
	return &menuResultRepository{
		db: db,
	}
}

// SummarizeDay upserts one row per menu of the day, including menus
// that received no votes.
func (r *menuResultRepository) SummarizeDay(ctx context.Context, date domain.Date) (int64, error) {
	query := `
		INSERT INTO menu_results (menu_id, result_date, points, vote_count, last_updated_at)
		SELECT m.id, m.menu_date, COALESCE(SUM(v.points), 0), COUNT(v.id), NOW()
		FROM menus m
		LEFT JOIN votes v ON v.menu_id = m.id
		WHERE m.menu_date = $1
		GROUP BY m.id, m.menu_date
		ON CONFLICT (menu_id) DO UPDATE
		SET points = EXCLUDED.points,
		    vote_count = EXCLUDED.vote_count,
		    last_updated_at = NOW();
	`

	res, err := r.db.ExecContext(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to summarize votes for %s: %w", date, err)
	}
	return res.RowsAffected()
}

func (r *menuResultRepository) ListByDate(ctx context.Context, date domain.Date) ([]domain.MenuResult, error) {
	query := `
		SELECT menu_id, result_date, points, vote_count, last_updated_at
		FROM menu_results
		WHERE result_date = $1
		ORDER BY points DESC, menu_id
	`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}
	defer rows.Close()

	var results []domain.MenuResult
	for rows.Next() {
		var mr domain.MenuResult
		if err := rows.Scan(&mr.MenuID, &mr.Date, &mr.Points, &mr.VoteCount, &mr.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, mr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}
	return results, nil
}
