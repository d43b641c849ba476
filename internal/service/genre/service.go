// Package genre implements genre management. All mutations are admin-only.
package genre

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
	"github.com/SoloAk21/library-manager-backend/pkg/ctxutil"
)

// genreRepo defines the genre repository interface needed by this service.
type genreRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Genre, error)
	List(ctx context.Context) ([]*domain.Genre, error)
	Create(ctx context.Context, g *domain.Genre) (*domain.Genre, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*domain.Genre, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// bookRepo defines the book repository interface needed by this service.
type bookRepo interface {
	CountByGenre(ctx context.Context, genreID uuid.UUID) (int, error)
}

// Service implements genre operations.
type Service struct {
	log    *slog.Logger
	genres genreRepo
	books  bookRepo
}

// NewService creates a new genre service.
func NewService(logger *slog.Logger, genres genreRepo, books bookRepo) *Service {
	return &Service{
		log:    logger.With("service", "genre"),
		genres: genres,
		books:  books,
	}
}

func callerRole(ctx context.Context) (domain.Role, bool) {
	raw, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return "", false
	}
	role := domain.Role(raw)
	return role, role.IsValid()
}

// List returns all genres.
func (s *Service) List(ctx context.Context) ([]*domain.Genre, error) {
	if _, ok := callerRole(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.genres.List(ctx)
}

// Get returns a single genre.
func (s *Service) Get(ctx context.Context, genreID uuid.UUID) (*domain.Genre, error) {
	if _, ok := callerRole(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.genres.GetByID(ctx, genreID)
}

// Create adds a new genre.
func (s *Service) Create(ctx context.Context, input Input) (*domain.Genre, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.CanManageGenres() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.genres.Create(ctx, &domain.Genre{
		ID:   uuid.New(),
		Name: input.Name,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "genre created",
		slog.String("genre_id", created.ID.String()),
		slog.String("name", created.Name))

	return created, nil
}

// Update renames a genre.
func (s *Service) Update(ctx context.Context, genreID uuid.UUID, input Input) (*domain.Genre, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.CanManageGenres() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.genres.Update(ctx, genreID, input.Name)
}

// Delete removes a genre. A genre still referenced by books cannot be deleted.
func (s *Service) Delete(ctx context.Context, genreID uuid.UUID) error {
	role, ok := callerRole(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !role.CanManageGenres() {
		return domain.ErrForbidden
	}

	inUse, err := s.books.CountByGenre(ctx, genreID)
	if err != nil {
		return fmt.Errorf("genre.Delete count books: %w", err)
	}
	if inUse > 0 {
		return fmt.Errorf("genre %s referenced by %d books: %w", genreID, inUse, domain.ErrConflict)
	}

	if err := s.genres.Delete(ctx, genreID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "genre deleted", slog.String("genre_id", genreID.String()))

	return nil
}
