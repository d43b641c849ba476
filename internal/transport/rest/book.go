package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
	"github.com/SoloAk21/library-manager-backend/internal/service/book"
)

// bookService defines the minimal interface needed by BookHandler.
type bookService interface {
	List(ctx context.Context) ([]*domain.Book, error)
	Get(ctx context.Context, bookID uuid.UUID) (*domain.Book, error)
	Create(ctx context.Context, input book.CreateInput) (*domain.Book, error)
	Update(ctx context.Context, bookID uuid.UUID, input book.UpdateInput) (*domain.Book, error)
	Delete(ctx context.Context, bookID uuid.UUID) error
}

// BookHandler serves book REST endpoints.
type BookHandler struct {
	svc bookService
	log *slog.Logger
}

// NewBookHandler creates a BookHandler.
func NewBookHandler(svc bookService, logger *slog.Logger) *BookHandler {
	return &BookHandler{svc: svc, log: logger.With("handler", "book")}
}

type createBookRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublishedYear   int    `json:"published_year"`
	GenreID         string `json:"genre_id"`
	AvailableCopies int    `json:"available_copies"`
}

type updateBookRequest struct {
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	PublishedYear   *int    `json:"published_year"`
	GenreID         *string `json:"genre_id"`
	AvailableCopies *int    `json:"available_copies"`
}

// List handles GET /api/books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookList(books))
}

// Get handles GET /api/books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(b))
}

// Create handles POST /api/books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// uuid.Nil for a missing or malformed genre_id; input validation
	// reports it alongside the other field errors.
	genreID, _ := uuid.Parse(req.GenreID)

	created, err := h.svc.Create(r.Context(), book.CreateInput{
		Title:           req.Title,
		Author:          req.Author,
		PublishedYear:   req.PublishedYear,
		GenreID:         genreID,
		AvailableCopies: req.AvailableCopies,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookResponse(created))
}

// Update handles PATCH /api/books/{id}.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := book.UpdateInput{
		Title:           req.Title,
		Author:          req.Author,
		PublishedYear:   req.PublishedYear,
		AvailableCopies: req.AvailableCopies,
	}
	if req.GenreID != nil {
		genreID, err := uuid.Parse(*req.GenreID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid genre_id")
			return
		}
		input.GenreID = &genreID
	}

	updated, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(updated))
}

// Delete handles DELETE /api/books/{id}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
