package borrow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// ReturnBook closes an outstanding loan: it stamps the return date and puts
// the copy back on the shelf, in one transaction.
//
// Returning a record that is already closed is a conflict; the copy count is
// only ever incremented by the first successful return.
func (s *Service) ReturnBook(ctx context.Context, input ReturnInput) (*domain.BorrowRecord, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.CanBorrow() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.records.GetByID(ctx, input.RecordID)
	if err != nil {
		return nil, err
	}

	returnedAt := s.now()
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		closed, err := s.records.MarkReturned(txCtx, input.RecordID, returnedAt)
		if err != nil {
			return fmt.Errorf("mark returned: %w", err)
		}
		if !closed {
			return fmt.Errorf("record %s already returned: %w", input.RecordID, domain.ErrConflict)
		}

		if err := s.books.IncrementAvailable(txCtx, rec.BookID); err != nil {
			return fmt.Errorf("increment copies: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "book returned",
		slog.String("record_id", rec.ID.String()),
		slog.String("book_id", rec.BookID.String()))

	return s.records.GetByID(ctx, input.RecordID)
}
