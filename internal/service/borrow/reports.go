package borrow

import (
	"context"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// OverdueBooks returns every outstanding loan past its due date, most overdue
// first, with the whole days overdue computed per record.
func (s *Service) OverdueBooks(ctx context.Context) ([]domain.OverdueBook, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.CanViewReports() {
		return nil, domain.ErrForbidden
	}

	now := s.now()
	records, err := s.records.ListOverdue(ctx, now)
	if err != nil {
		return nil, err
	}

	overdue := make([]domain.OverdueBook, 0, len(records))
	for _, rec := range records {
		overdue = append(overdue, domain.OverdueBook{
			Record:      *rec,
			DaysOverdue: domain.DaysOverdue(rec, now),
		})
	}

	return overdue, nil
}

// PopularGenres returns borrow counts per genre, most borrowed first.
func (s *Service) PopularGenres(ctx context.Context) ([]domain.GenreBorrowCount, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.CanViewReports() {
		return nil, domain.ErrForbidden
	}

	return s.records.PopularGenres(ctx)
}

// Summary returns the aggregate circulation figures.
func (s *Service) Summary(ctx context.Context) (domain.BorrowSummary, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return domain.BorrowSummary{}, domain.ErrUnauthorized
	}
	if !role.CanViewReports() {
		return domain.BorrowSummary{}, domain.ErrForbidden
	}

	return s.records.Summary(ctx)
}
