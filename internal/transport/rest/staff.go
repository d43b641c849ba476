package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
	"github.com/SoloAk21/library-manager-backend/internal/service/staff"
)

// staffService defines the minimal interface needed by StaffHandler.
type staffService interface {
	List(ctx context.Context) ([]*domain.Staff, error)
	Get(ctx context.Context, staffID uuid.UUID) (*domain.Staff, error)
	Update(ctx context.Context, staffID uuid.UUID, input staff.UpdateInput) (*domain.Staff, error)
	Delete(ctx context.Context, staffID uuid.UUID) error
}

// StaffHandler serves staff-management REST endpoints. Creation goes through
// the auth signup endpoint because it involves a password.
type StaffHandler struct {
	svc staffService
	log *slog.Logger
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(svc staffService, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{svc: svc, log: logger.With("handler", "staff")}
}

type updateStaffRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
}

// List handles GET /api/staff.
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStaffList(accounts))
}

// Get handles GET /api/staff/{id}.
func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStaffResponse(s))
}

// Update handles PATCH /api/staff/{id}.
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := staff.UpdateInput{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	updated, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStaffResponse(updated))
}

// Delete handles DELETE /api/staff/{id}.
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
