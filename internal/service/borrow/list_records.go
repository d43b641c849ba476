package borrow

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// List returns borrow records, optionally filtered by a case-insensitive
// substring of the book title or member name, and by derived status.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.BorrowRecord, error) {
	if _, ok := callerRole(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	if input.Search == "" && input.Status == "" {
		return records, nil
	}

	search := strings.ToLower(input.Search)
	now := s.now()
	filtered := []*domain.BorrowRecord{}
	for _, rec := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.BookTitle), search) &&
			!strings.Contains(strings.ToLower(rec.MemberName), search) {
			continue
		}
		if input.Status != "" && domain.DeriveStatus(rec, now) != input.Status {
			continue
		}
		filtered = append(filtered, rec)
	}

	return filtered, nil
}

// Get returns a single borrow record.
func (s *Service) Get(ctx context.Context, recordID uuid.UUID) (*domain.BorrowRecord, error) {
	if _, ok := callerRole(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.records.GetByID(ctx, recordID)
}
