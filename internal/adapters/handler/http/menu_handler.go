package http

import (
	"net/http"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type MenuHandler struct {
	service   ports.MenuService
	today     func() domain.Date
	validator *requestValidator
}

func NewMenuHandler(service ports.MenuService, today func() domain.Date) *MenuHandler {
	return &MenuHandler{
		service:   service,
		today:     today,
		validator: newRequestValidator(),
	}
}

type createMenuRequest struct {
	Restaurant int64        `json:"restaurant" validate:"required,gt=0"`
	Date       *domain.Date `json:"date"`
	Items      string       `json:"items" validate:"required"`
}

type uploadMenuRequest struct {
	Date  *domain.Date `json:"date"`
	Items string       `json:"items" validate:"required"`
}

type updateMenuRequest struct {
	Items string `json:"items" validate:"required"`
}

func (h *MenuHandler) dateOrToday(d *domain.Date) domain.Date {
	if d == nil || d.IsZero() {
		return h.today()
	}
	return *d
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMenuRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, r, err)
		return
	}

	menu, err := h.service.Create(r.Context(), ports.CreateMenuInput{
		RestaurantID: req.Restaurant,
		Date:         h.dateOrToday(req.Date),
		Items:        req.Items,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, menu)
}

// Upload publishes a menu for the caller's own restaurant.
func (h *MenuHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrUnauthenticated)
		return
	}

	var req uploadMenuRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, r, err)
		return
	}

	menu, err := h.service.Upload(r.Context(), ports.UploadMenuInput{
		OwnerID: user.ID,
		Date:    h.dateOrToday(req.Date),
		Items:   req.Items,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, menu)
}

func (h *MenuHandler) CurrentDay(w http.ResponseWriter, r *http.Request) {
	menus, err := h.service.CurrentDay(r.Context(), h.today())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, menus)
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	menus, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(menus))
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	menu, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req updateMenuRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, r, err)
		return
	}

	menu, err := h.service.UpdateItems(r.Context(), id, req.Items)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
