package http

import (
	"net/http"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type EmployeeHandler struct {
	service   ports.EmployeeService
	validator *requestValidator
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		service:   service,
		validator: newRequestValidator(),
	}
}

type createEmployeeRequest struct {
	User     userFields `json:"user"`
	Phone    string     `json:"phone" validate:"required,phone,min=10"`
	Position string     `json:"position" validate:"required,max=100"`
}

// Fields left out of an update keep their stored value.
type updateEmployeeRequest struct {
	Phone    *string `json:"phone" validate:"omitnil,phone,min=10"`
	Position *string `json:"position" validate:"omitnil,required,max=100"`
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, r, err)
		return
	}

	employee, err := h.service.Create(r.Context(), ports.CreateEmployeeInput{
		User:     req.User.input(domain.RoleEmployee),
		Phone:    req.Phone,
		Position: req.Position,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(employees))
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	employee, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req updateEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, r, err)
		return
	}

	employee, err := h.service.Update(r.Context(), id, ports.UpdateEmployeeInput{
		Phone:    req.Phone,
		Position: req.Position,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
