package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

const voteColumns = `v.id, v.employee_id, v.menu_id, v.points, v.created_at, v.updated_at`

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) CreateBatch(ctx context.Context, votes []*domain.Vote) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO votes (employee_id, menu_id, points)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare vote statement: %w", err)
	}
	defer stmt.Close()

	for _, vote := range votes {
		err := stmt.QueryRowContext(ctx, vote.EmployeeID, vote.MenuID, vote.Points).
			Scan(&vote.ID, &vote.CreatedAt, &vote.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return &domain.ConflictError{Resource: "vote", MenuID: vote.MenuID, Err: err}
			}
			if isForeignKeyViolation(err) {
				return domain.ErrMenuNotFound
			}
			return fmt.Errorf("failed to insert vote: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *voteRepository) HasVoted(ctx context.Context, employeeID, menuID int64) (bool, error) {
	query := `SELECT 1 FROM votes WHERE employee_id = $1 AND menu_id = $2 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, employeeID, menuID).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return true, nil
}

func (r *voteRepository) GetByID(ctx context.Context, id int64) (*domain.Vote, error) {
	query := `SELECT ` + voteColumns + ` FROM votes v WHERE v.id = $1`
	vote, err := scanVote(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return vote, nil
}

func (r *voteRepository) List(ctx context.Context) ([]*domain.Vote, error) {
	return r.list(ctx, `SELECT `+voteColumns+` FROM votes v ORDER BY v.id`)
}

func (r *voteRepository) ListByDate(ctx context.Context, date domain.Date) ([]*domain.Vote, error) {
	query := `
		SELECT ` + voteColumns + `
		FROM votes v
		JOIN menus m ON m.id = v.menu_id
		WHERE m.menu_date = $1
		ORDER BY v.id
	`
	return r.list(ctx, query, date)
}

func (r *voteRepository) ListByEmployeeAndDate(ctx context.Context, employeeID int64, date domain.Date) ([]*domain.Vote, error) {
	query := `
		SELECT ` + voteColumns + `
		FROM votes v
		JOIN menus m ON m.id = v.menu_id
		WHERE v.employee_id = $1 AND m.menu_date = $2
		ORDER BY v.id
	`
	return r.list(ctx, query, employeeID, date)
}

func (r *voteRepository) UpdatePoints(ctx context.Context, id int64, points int) (*domain.Vote, error) {
	query := `UPDATE votes SET points = $1, updated_at = NOW() WHERE id = $2`
	if err := execAffectingOne(ctx, r.db, domain.ErrVoteNotFound, query, points, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *voteRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, domain.ErrVoteNotFound, `DELETE FROM votes WHERE id = $1`, id)
}

func (r *voteRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Vote, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var votes []*domain.Vote
	for rows.Next() {
		vote, err := scanVote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return votes, nil
}

func scanVote(row rowScanner) (*domain.Vote, error) {
	var vote domain.Vote
	if err := row.Scan(&vote.ID, &vote.EmployeeID, &vote.MenuID, &vote.Points, &vote.CreatedAt, &vote.UpdatedAt); err != nil {
		return nil, err
	}
	return &vote, nil
}
