package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
)

type VoteRepository interface {
	// CreateBatch inserts every vote in one transaction. A uniqueness
	// violation is returned as *domain.ConflictError and nothing is kept.
	CreateBatch(ctx context.Context, votes []*domain.Vote) error
	HasVoted(ctx context.Context, employeeID, menuID int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Vote, error)
	List(ctx context.Context) ([]*domain.Vote, error)
	// ListByDate returns votes for menus dated date, ordered by vote id.
	ListByDate(ctx context.Context, date domain.Date) ([]*domain.Vote, error)
	ListByEmployeeAndDate(ctx context.Context, employeeID int64, date domain.Date) ([]*domain.Vote, error)
	UpdatePoints(ctx context.Context, id int64, points int) (*domain.Vote, error)
	Delete(ctx context.Context, id int64) error
}

type CastVoteInput struct {
	UserID  uuid.UUID
	AsOf    domain.Date
	Request domain.CastRequest
}

type CreateVoteInput struct {
	EmployeeID int64
	MenuID     int64
	Points     int
}

type VoteService interface {
	Cast(ctx context.Context, input CastVoteInput) ([]*domain.Vote, error)
	MyVotes(ctx context.Context, userID uuid.UUID, asOf domain.Date) ([]domain.MyVote, error)
	Results(ctx context.Context, asOf domain.Date) (domain.DailyResults, error)

	Create(ctx context.Context, input CreateVoteInput) (*domain.Vote, error)
	Get(ctx context.Context, id int64) (*domain.Vote, error)
	List(ctx context.Context) ([]*domain.Vote, error)
	UpdatePoints(ctx context.Context, id int64, points int) (*domain.Vote, error)
	Delete(ctx context.Context, id int64) error
}

// VoteMetrics observes successful casts.
type VoteMetrics interface {
	VotesCast(version domain.APIVersion, count int)
}
