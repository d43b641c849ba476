package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
	"github.com/SoloAk21/library-manager-backend/internal/service/genre"
)

// genreService defines the minimal interface needed by GenreHandler.
type genreService interface {
	List(ctx context.Context) ([]*domain.Genre, error)
	Get(ctx context.Context, genreID uuid.UUID) (*domain.Genre, error)
	Create(ctx context.Context, input genre.Input) (*domain.Genre, error)
	Update(ctx context.Context, genreID uuid.UUID, input genre.Input) (*domain.Genre, error)
	Delete(ctx context.Context, genreID uuid.UUID) error
}

// GenreHandler serves genre REST endpoints.
type GenreHandler struct {
	svc genreService
	log *slog.Logger
}

// NewGenreHandler creates a GenreHandler.
func NewGenreHandler(svc genreService, logger *slog.Logger) *GenreHandler {
	return &GenreHandler{svc: svc, log: logger.With("handler", "genre")}
}

type genreRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/genres.
func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGenreList(genres))
}

// Get handles GET /api/genres/{id}.
func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	g, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGenreResponse(g))
}

// Create handles POST /api/genres.
func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), genre.Input{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGenreResponse(created))
}

// Update handles PATCH /api/genres/{id}.
func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req genreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, genre.Input{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGenreResponse(updated))
}

// Delete handles DELETE /api/genres/{id}.
func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
