package book

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// List returns the whole catalogue.
func (s *Service) List(ctx context.Context) ([]*domain.Book, error) {
	if _, ok := callerRole(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.books.List(ctx)
}

// Get returns a single book.
func (s *Service) Get(ctx context.Context, bookID uuid.UUID) (*domain.Book, error) {
	if _, ok := callerRole(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.books.GetByID(ctx, bookID)
}

// Create adds a new book to the catalogue.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Book, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.CanManageBooks() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(s.cfg.MinPublishedYear); err != nil {
		return nil, err
	}

	// Resolve the genre up front so an unknown one reads as a field error,
	// not an FK violation.
	if _, err := s.genres.GetByID(ctx, input.GenreID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("genre_id", "unknown genre")
		}
		return nil, fmt.Errorf("book.Create resolve genre: %w", err)
	}

	created, err := s.books.Create(ctx, &domain.Book{
		ID:              uuid.New(),
		Title:           input.Title,
		Author:          input.Author,
		PublishedYear:   input.PublishedYear,
		GenreID:         input.GenreID,
		AvailableCopies: input.AvailableCopies,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "book created",
		slog.String("book_id", created.ID.String()),
		slog.String("title", created.Title))

	return created, nil
}

// Update applies a partial update to a book.
func (s *Service) Update(ctx context.Context, bookID uuid.UUID, input UpdateInput) (*domain.Book, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.CanManageBooks() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(s.cfg.MinPublishedYear); err != nil {
		return nil, err
	}

	if input.GenreID != nil {
		if _, err := s.genres.GetByID(ctx, *input.GenreID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("genre_id", "unknown genre")
			}
			return nil, fmt.Errorf("book.Update resolve genre: %w", err)
		}
	}

	return s.books.Update(ctx, bookID, domain.BookUpdateParams{
		Title:           input.Title,
		Author:          input.Author,
		PublishedYear:   input.PublishedYear,
		GenreID:         input.GenreID,
		AvailableCopies: input.AvailableCopies,
	})
}

// Delete removes a book. A book with open loans cannot be deleted.
func (s *Service) Delete(ctx context.Context, bookID uuid.UUID) error {
	role, ok := callerRole(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !role.CanDeleteBooks() {
		return domain.ErrForbidden
	}

	outstanding, err := s.records.CountOutstandingByBook(ctx, bookID)
	if err != nil {
		return fmt.Errorf("book.Delete count outstanding: %w", err)
	}
	if outstanding > 0 {
		return fmt.Errorf("book %s has %d open loans: %w", bookID, outstanding, domain.ErrConflict)
	}

	if err := s.books.Delete(ctx, bookID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "book deleted", slog.String("book_id", bookID.String()))

	return nil
}
