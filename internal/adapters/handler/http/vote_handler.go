package http

import (
	"errors"
	"net/http"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type VoteHandler struct {
	service   ports.VoteService
	today     func() domain.Date
	validator *requestValidator
}

func NewVoteHandler(service ports.VoteService, today func() domain.Date) *VoteHandler {
	return &VoteHandler{
		service:   service,
		today:     today,
		validator: newRequestValidator(),
	}
}

type createVoteRequest struct {
	Employee int64 `json:"employee" validate:"required,gt=0"`
	Menu     int64 `json:"menu" validate:"required,gt=0"`
	Points   int   `json:"points" validate:"required"`
}

type updateVoteRequest struct {
	Points int `json:"points" validate:"required"`
}

// CastVote godoc
// @Summary      Cast today's vote
// @Description  v1 takes {"menu_id"}. v2 takes {"top_menus"} with exactly three ranked menus. The version comes from the Accept header, e.g. "application/json; version=v2".
// @Tags         votes
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      403
// @Failure      406
// @Router       /api/votes/cast-vote [post]
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrUnauthenticated)
		return
	}

	req, err := decodeCastRequest(r, VersionFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, err = h.service.Cast(r.Context(), ports.CastVoteInput{
		UserID:  user.ID,
		AsOf:    h.today(),
		Request: req,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Vote cast successfully")
}

func decodeCastRequest(r *http.Request, version domain.APIVersion) (domain.CastRequest, error) {
	switch version {
	case domain.V1:
		var req domain.CastV1
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		return req, nil
	case domain.V2:
		var req domain.CastV2
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		return req, nil
	}
	return nil, domain.NewValidationError("version", "Unsupported version.")
}

// MyVote godoc
// @Summary      Caller's votes for today
// @Tags         votes
// @Produce      json
// @Success      200
// @Router       /api/votes/my-vote [get]
func (h *VoteHandler) MyVote(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrUnauthenticated)
		return
	}

	votes, err := h.service.MyVotes(r.Context(), user.ID, h.today())
	if err != nil {
		if errors.Is(err, domain.ErrNoVoteFound) {
			writeMessage(w, http.StatusOK, err.Error())
			return
		}
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, votes)
}

// AllVotesResults godoc
// @Summary      Today's results per menu
// @Tags         votes
// @Produce      json
// @Success      200
// @Router       /api/votes/all-votes-results [get]
func (h *VoteHandler) AllVotesResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Results(r.Context(), h.today())
	if err != nil {
		if errors.Is(err, domain.ErrNoVotesToday) {
			writeMessage(w, http.StatusOK, err.Error())
			return
		}
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *VoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, r, err)
		return
	}

	vote, err := h.service.Create(r.Context(), ports.CreateVoteInput{
		EmployeeID: req.Employee,
		MenuID:     req.Menu,
		Points:     req.Points,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, vote)
}

func (h *VoteHandler) List(w http.ResponseWriter, r *http.Request) {
	votes, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(votes))
}

func (h *VoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	vote, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vote)
}

func (h *VoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req updateVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, r, err)
		return
	}

	vote, err := h.service.UpdatePoints(r.Context(), id, req.Points)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vote)
}

func (h *VoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
