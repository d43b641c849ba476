package borrow

import (
	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// BorrowInput holds the parameters for recording a new loan.
type BorrowInput struct {
	BookID   uuid.UUID
	MemberID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *BorrowInput) Validate() error {
	var errs []domain.FieldError

	if i.BookID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "book_id", Message: "required"})
	}
	if i.MemberID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "member_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReturnInput holds the parameters for processing a return.
type ReturnInput struct {
	RecordID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *ReturnInput) Validate() error {
	if i.RecordID == uuid.Nil {
		return domain.NewValidationError("record_id", "required")
	}
	return nil
}

// ListInput holds the optional filters for listing borrow records.
type ListInput struct {
	// Search matches case-insensitively against book title and member name.
	Search string
	// Status narrows to one derived status; empty means all.
	Status domain.BorrowStatus
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	if i.Status != "" && !i.Status.IsValid() {
		return domain.NewValidationError("status", "invalid value (allowed: borrowed, overdue, returned)")
	}
	return nil
}
