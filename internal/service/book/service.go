// Package book implements catalogue management for books.
package book

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/config"
	"github.com/SoloAk21/library-manager-backend/internal/domain"
	"github.com/SoloAk21/library-manager-backend/pkg/ctxutil"
)

// bookRepo defines the book repository interface needed by this service.
type bookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
	Update(ctx context.Context, id uuid.UUID, params domain.BookUpdateParams) (*domain.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// genreRepo defines the genre repository interface needed by this service.
type genreRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Genre, error)
}

// recordRepo defines the borrow record repository interface needed by this service.
type recordRepo interface {
	CountOutstandingByBook(ctx context.Context, bookID uuid.UUID) (int, error)
}

// Service implements book catalogue operations.
type Service struct {
	log     *slog.Logger
	books   bookRepo
	genres  genreRepo
	records recordRepo
	cfg     config.LibraryConfig
}

// NewService creates a new book service.
func NewService(
	logger *slog.Logger,
	books bookRepo,
	genres genreRepo,
	records recordRepo,
	cfg config.LibraryConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "book"),
		books:   books,
		genres:  genres,
		records: records,
		cfg:     cfg,
	}
}

// callerRole extracts the authenticated caller's role from the context.
func callerRole(ctx context.Context) (domain.Role, bool) {
	raw, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return "", false
	}
	role := domain.Role(raw)
	return role, role.IsValid()
}
