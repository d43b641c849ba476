package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
	"github.com/SoloAk21/library-manager-backend/internal/service/member"
)

// memberService defines the minimal interface needed by MemberHandler.
type memberService interface {
	List(ctx context.Context) ([]*domain.Member, error)
	Get(ctx context.Context, memberID uuid.UUID) (*domain.Member, error)
	BorrowingHistory(ctx context.Context, memberID uuid.UUID) ([]*domain.BorrowRecord, error)
	Create(ctx context.Context, input member.CreateInput) (*domain.Member, error)
	Update(ctx context.Context, memberID uuid.UUID, input member.UpdateInput) (*domain.Member, error)
	Delete(ctx context.Context, memberID uuid.UUID) error
}

// MemberHandler serves member REST endpoints.
type MemberHandler struct {
	svc memberService
	log *slog.Logger
}

// NewMemberHandler creates a MemberHandler.
func NewMemberHandler(svc memberService, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{svc: svc, log: logger.With("handler", "member")}
}

type createMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type updateMemberRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// List handles GET /api/members.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemberList(members))
}

// Get handles GET /api/members/{id}.
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemberResponse(m))
}

// BorrowingHistory handles GET /api/members/{id}/borrowing-history.
func (h *MemberHandler) BorrowingHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	records, err := h.svc.BorrowingHistory(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBorrowRecordList(records, time.Now()))
}

// Create handles POST /api/members.
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), member.CreateInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMemberResponse(created))
}

// Update handles PATCH /api/members/{id}.
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, member.UpdateInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemberResponse(updated))
}

// Delete handles DELETE /api/members/{id}.
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
