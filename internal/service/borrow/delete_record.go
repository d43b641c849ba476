package borrow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// DeleteRecord removes a borrow record from the history.
//
// If the loan is still outstanding, the borrowed copy is put back on the
// shelf in the same transaction, so the copy count stays consistent with the
// set of open loans. The outstanding check comes from the delete itself, not
// from a prior read: a concurrent return can close the loan (and restore the
// copy) between a read and the delete, and deciding off a stale snapshot
// would put the copy back twice.
func (s *Service) DeleteRecord(ctx context.Context, recordID uuid.UUID) error {
	role, ok := callerRole(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !role.CanDeleteRecords() {
		return domain.ErrForbidden
	}

	var wasOutstanding bool
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		bookID, outstanding, err := s.records.Delete(txCtx, recordID)
		if err != nil {
			return err
		}
		wasOutstanding = outstanding

		if outstanding {
			if err := s.books.IncrementAvailable(txCtx, bookID); err != nil {
				return fmt.Errorf("increment copies: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	s.log.InfoContext(ctx, "borrow record deleted",
		slog.String("record_id", recordID.String()),
		slog.Bool("was_outstanding", wasOutstanding))

	return nil
}
