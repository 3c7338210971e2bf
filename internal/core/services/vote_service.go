package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type voteService struct {
	menuRepo     ports.MenuRepository
	voteRepo     ports.VoteRepository
	employeeRepo ports.EmployeeRepository
	metrics      ports.VoteMetrics
}

func NewVoteService(menuRepo ports.MenuRepository, voteRepo ports.VoteRepository, employeeRepo ports.EmployeeRepository, metrics ports.VoteMetrics) ports.VoteService {
	if metrics == nil {
		metrics = noopVoteMetrics{}
	}
	return &voteService{
		menuRepo:     menuRepo,
		voteRepo:     voteRepo,
		employeeRepo: employeeRepo,
		metrics:      metrics,
	}
}

func (s *voteService) Cast(ctx context.Context, input ports.CastVoteInput) ([]*domain.Vote, error) {
	employee, err := s.currentEmployee(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := input.Request.Malformed(); err != nil {
		return nil, err
	}

	var votes []*domain.Vote
	switch req := input.Request.(type) {
	case domain.CastV1:
		votes, err = s.validateV1(ctx, employee, input.AsOf, req)
	case domain.CastV2:
		votes, err = s.validateV2(ctx, employee, input.AsOf, req)
	default:
		return nil, domain.NewValidationError("version", "Unsupported version.")
	}
	if err != nil {
		return nil, err
	}

	if err := s.voteRepo.CreateBatch(ctx, votes); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return nil, alreadyVoted(input.Request.Version(), conflict.MenuID)
		}
		return nil, fmt.Errorf("failed to save votes: %w", err)
	}

	s.metrics.VotesCast(input.Request.Version(), len(votes))
	return votes, nil
}

func (s *voteService) validateV1(ctx context.Context, employee *domain.Employee, asOf domain.Date, req domain.CastV1) ([]*domain.Vote, error) {
	if req.MenuID == nil || *req.MenuID == 0 {
		return nil, domain.NewValidationError("menu_id", "Menu ID is required.")
	}

	menu, err := s.findTodayMenu(ctx, *req.MenuID, asOf)
	if err != nil {
		return nil, err
	}

	if err := s.ensureNotVoted(ctx, employee.ID, menu.ID, domain.V1); err != nil {
		return nil, err
	}

	return []*domain.Vote{{
		EmployeeID: employee.ID,
		MenuID:     menu.ID,
		Points:     domain.V1Points,
	}}, nil
}

// validateV2 checks the ranked batch entry by entry and stops at the first
// failure. Nothing is written here.
func (s *voteService) validateV2(ctx context.Context, employee *domain.Employee, asOf domain.Date, req domain.CastV2) ([]*domain.Vote, error) {
	if len(req.TopMenus) != domain.TopMenusCount {
		return nil, domain.NewValidationError("top_menus", domain.TopMenusRequired)
	}

	seenPoints := make(map[int]bool, domain.TopMenusCount)
	seenMenus := make(map[int64]bool, domain.TopMenusCount)
	votes := make([]*domain.Vote, 0, domain.TopMenusCount)

	for _, entry := range req.TopMenus {
		if entry.Points == nil || !domain.ValidPoints(*entry.Points) {
			return nil, domain.NewValidationError("points", "Points must be 1, 2, or 3.")
		}
		points := *entry.Points
		if seenPoints[points] {
			return nil, domain.NewValidationError("points", "Points must be unique for each menu.")
		}
		seenPoints[points] = true

		if err := entry.MenuIDError(); err != nil {
			return nil, err
		}
		if entry.MenuID == nil {
			return nil, domain.NewValidationError("menu_id", "Menu ID is required.")
		}
		menuID := *entry.MenuID
		if seenMenus[menuID] {
			return nil, domain.NewValidationError("menu_id", "Menu IDs must be unique.")
		}
		seenMenus[menuID] = true

		menu, err := s.findTodayMenu(ctx, menuID, asOf)
		if err != nil {
			return nil, err
		}

		if err := s.ensureNotVoted(ctx, employee.ID, menu.ID, domain.V2); err != nil {
			return nil, err
		}

		votes = append(votes, &domain.Vote{
			EmployeeID: employee.ID,
			MenuID:     menu.ID,
			Points:     points,
		})
	}

	return votes, nil
}

func (s *voteService) findTodayMenu(ctx context.Context, menuID int64, asOf domain.Date) (*domain.Menu, error) {
	menu, err := s.menuRepo.GetForDate(ctx, menuID, asOf)
	if err != nil {
		if errors.Is(err, domain.ErrMenuNotFound) {
			return nil, domain.NewValidationError("menu_id", fmt.Sprintf("Menu with ID %d not found or not available for today.", menuID))
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return menu, nil
}

func (s *voteService) ensureNotVoted(ctx context.Context, employeeID, menuID int64, version domain.APIVersion) error {
	hasVoted, err := s.voteRepo.HasVoted(ctx, employeeID, menuID)
	if err != nil {
		return fmt.Errorf("failed to check existing vote: %w", err)
	}
	if hasVoted {
		return alreadyVoted(version, menuID)
	}
	return nil
}

func alreadyVoted(version domain.APIVersion, menuID int64) error {
	if version == domain.V2 {
		return domain.NewValidationError("vote", fmt.Sprintf("You have already cast your vote for this Menu with ID %d.", menuID))
	}
	return domain.NewValidationError("vote", "You have already cast your vote for this menu.")
}

func (s *voteService) currentEmployee(ctx context.Context, userID uuid.UUID) (*domain.Employee, error) {
	employee, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if employee == nil {
		return nil, domain.NewValidationError("role", "Attempt to cast a vote as an employee role.")
	}
	return employee, nil
}

func (s *voteService) MyVotes(ctx context.Context, userID uuid.UUID, asOf domain.Date) ([]domain.MyVote, error) {
	employee, err := s.currentEmployee(ctx, userID)
	if err != nil {
		return nil, err
	}

	votes, err := s.voteRepo.ListByEmployeeAndDate(ctx, employee.ID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	if len(votes) == 0 {
		return nil, domain.ErrNoVoteFound
	}

	result := make([]domain.MyVote, 0, len(votes))
	for _, v := range votes {
		result = append(result, domain.MyVote{MenuID: v.MenuID, Points: v.Points})
	}
	return result, nil
}

func (s *voteService) Results(ctx context.Context, asOf domain.Date) (domain.DailyResults, error) {
	votes, err := s.voteRepo.ListByDate(ctx, asOf)
	if err != nil {
		return domain.DailyResults{}, fmt.Errorf("failed to list votes: %w", err)
	}
	if len(votes) == 0 {
		return domain.DailyResults{}, domain.ErrNoVotesToday
	}
	return domain.Tally(votes), nil
}

// Create records a vote directly, bypassing the casting rules. Admin only.
func (s *voteService) Create(ctx context.Context, input ports.CreateVoteInput) (*domain.Vote, error) {
	if !domain.ValidPoints(input.Points) {
		return nil, domain.NewValidationError("points", "Points must be 1, 2, or 3.")
	}
	if _, err := s.employeeRepo.GetByID(ctx, input.EmployeeID); err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, invalidPK("employee", input.EmployeeID)
		}
		return nil, err
	}
	if _, err := s.menuRepo.GetByID(ctx, input.MenuID); err != nil {
		if errors.Is(err, domain.ErrMenuNotFound) {
			return nil, invalidPK("menu", input.MenuID)
		}
		return nil, err
	}

	vote := &domain.Vote{
		EmployeeID: input.EmployeeID,
		MenuID:     input.MenuID,
		Points:     input.Points,
	}
	if err := s.voteRepo.CreateBatch(ctx, []*domain.Vote{vote}); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return nil, domain.NewValidationError("non_field_errors", "The fields employee, menu must make a unique set.")
		}
		return nil, fmt.Errorf("failed to save vote: %w", err)
	}
	return vote, nil
}

func (s *voteService) Get(ctx context.Context, id int64) (*domain.Vote, error) {
	return s.voteRepo.GetByID(ctx, id)
}

func (s *voteService) List(ctx context.Context) ([]*domain.Vote, error) {
	return s.voteRepo.List(ctx)
}

func (s *voteService) UpdatePoints(ctx context.Context, id int64, points int) (*domain.Vote, error) {
	if !domain.ValidPoints(points) {
		return nil, domain.NewValidationError("points", "Points must be 1, 2, or 3.")
	}
	return s.voteRepo.UpdatePoints(ctx, id, points)
}

func (s *voteService) Delete(ctx context.Context, id int64) error {
	return s.voteRepo.Delete(ctx, id)
}

func invalidPK(field string, id int64) error {
	return domain.NewValidationError(field, fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
}

type noopVoteMetrics struct{}

func (noopVoteMetrics) VotesCast(domain.APIVersion, int) {}
