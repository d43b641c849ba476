package borrow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// BorrowBook records a new loan: it takes one available copy of the book and
// opens a borrow record due one loan period from now.
//
// The copy decrement and the record insert run in one transaction, and the
// decrement is conditional on at least one copy being available, so two
// concurrent borrows of the last copy cannot both succeed.
func (s *Service) BorrowBook(ctx context.Context, input BorrowInput) (*domain.BorrowRecord, error) {
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

	// Member lookup up front gives a clean not-found instead of an FK error.
	if _, err := s.members.GetByID(ctx, input.MemberID); err != nil {
		return nil, err
	}

	now := s.now()
	rec := &domain.BorrowRecord{
		ID:         uuid.New(),
		BookID:     input.BookID,
		MemberID:   input.MemberID,
		BorrowDate: now,
		DueDate:    now.Add(s.cfg.LoanPeriod()),
	}

	var created *domain.BorrowRecord
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		taken, err := s.books.DecrementAvailable(txCtx, input.BookID)
		if err != nil {
			return fmt.Errorf("decrement copies: %w", err)
		}
		if !taken {
			// Either the book does not exist or it has no copies left.
			// GetByID settles which.
			if _, getErr := s.books.GetByID(txCtx, input.BookID); getErr != nil {
				return getErr
			}
			return fmt.Errorf("book %s has no available copies: %w", input.BookID, domain.ErrConflict)
		}

		created, err = s.records.Create(txCtx, rec)
		if err != nil {
			return fmt.Errorf("create record: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "book borrowed",
		slog.String("record_id", created.ID.String()),
		slog.String("book_id", input.BookID.String()),
		slog.String("member_id", input.MemberID.String()),
		slog.Time("due_date", created.DueDate))

	return created, nil
}
