package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
	"github.com/SoloAk21/library-manager-backend/internal/service/borrow"
)

// borrowService defines the minimal interface needed by BorrowHandler.
type borrowService interface {
	List(ctx context.Context, input borrow.ListInput) ([]*domain.BorrowRecord, error)
	Get(ctx context.Context, recordID uuid.UUID) (*domain.BorrowRecord, error)
	BorrowBook(ctx context.Context, input borrow.BorrowInput) (*domain.BorrowRecord, error)
	ReturnBook(ctx context.Context, input borrow.ReturnInput) (*domain.BorrowRecord, error)
	DeleteRecord(ctx context.Context, recordID uuid.UUID) error
	OverdueBooks(ctx context.Context) ([]domain.OverdueBook, error)
	PopularGenres(ctx context.Context) ([]domain.GenreBorrowCount, error)
	Summary(ctx context.Context) (domain.BorrowSummary, error)
}

// BorrowHandler serves circulation REST endpoints.
type BorrowHandler struct {
	svc borrowService
	log *slog.Logger
}

// NewBorrowHandler creates a BorrowHandler.
func NewBorrowHandler(svc borrowService, logger *slog.Logger) *BorrowHandler {
	return &BorrowHandler{svc: svc, log: logger.With("handler", "borrow")}
}

type borrowRequest struct {
	BookID   string `json:"book_id"`
	MemberID string `json:"member_id"`
}

type returnRequest struct {
	RecordID string `json:"record_id"`
}

// List handles GET /api/borrow-records?search=&status=.
func (h *BorrowHandler) List(w http.ResponseWriter, r *http.Request) {
	input := borrow.ListInput{
		Search: r.URL.Query().Get("search"),
		Status: domain.BorrowStatus(r.URL.Query().Get("status")),
	}

	records, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBorrowRecordList(records, time.Now()))
}

// Get handles GET /api/borrow-records/{id}.
func (h *BorrowHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBorrowRecordResponse(rec, time.Now()))
}

// Borrow handles POST /api/borrow-records/borrow.
func (h *BorrowHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req borrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// uuid.Nil for missing or malformed IDs; input validation reports them.
	bookID, _ := uuid.Parse(req.BookID)
	memberID, _ := uuid.Parse(req.MemberID)

	rec, err := h.svc.BorrowBook(r.Context(), borrow.BorrowInput{
		BookID:   bookID,
		MemberID: memberID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBorrowRecordResponse(rec, time.Now()))
}

// Return handles POST /api/borrow-records/return.
func (h *BorrowHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req returnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	recordID, _ := uuid.Parse(req.RecordID)

	rec, err := h.svc.ReturnBook(r.Context(), borrow.ReturnInput{RecordID: recordID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBorrowRecordResponse(rec, time.Now()))
}

// Delete handles DELETE /api/borrow-records/{id}.
func (h *BorrowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteRecord(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Overdue handles GET /api/borrow-records/reports/overdue.
func (h *BorrowHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.OverdueBooks(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOverdueList(rows, time.Now()))
}

// PopularGenres handles GET /api/borrow-records/reports/popular-genres.
func (h *BorrowHandler) PopularGenres(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.PopularGenres(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPopularGenreList(rows))
}

// Summary handles GET /api/borrow-records/reports/summary.
func (h *BorrowHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}
