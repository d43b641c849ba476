package domain

import (
	"time"

	"github.com/google/uuid"
)

// BorrowStatus is the lifecycle state of a borrow record. It is derived from
// the record's dates on every read and never stored, because "overdue"
// depends on wall-clock time.
type BorrowStatus string

const (
	StatusBorrowed BorrowStatus = "borrowed"
	StatusOverdue  BorrowStatus = "overdue"
	StatusReturned BorrowStatus = "returned"
)

func (s BorrowStatus) String() string { return string(s) }

func (s BorrowStatus) IsValid() bool {
	switch s {
	case StatusBorrowed, StatusOverdue, StatusReturned:
		return true
	}
	return false
}

// BorrowRecord represents one loan of one book copy to one member.
// ReturnDate is nil while the loan is outstanding and immutable once set.
// DueDate is fixed at creation.
type BorrowRecord struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	MemberID   uuid.UUID
	BorrowDate time.Time
	DueDate    time.Time
	ReturnDate *time.Time
	CreatedAt  time.Time

	// Joined display fields, populated on reads.
	BookTitle  string
	BookAuthor string
	MemberName string
}

// IsReturned reports whether the loan has been closed.
func (r *BorrowRecord) IsReturned() bool {
	return r.ReturnDate != nil
}

// DeriveStatus computes the record's status at the given instant.
// Returned records are always StatusReturned regardless of now.
func DeriveStatus(r *BorrowRecord, now time.Time) BorrowStatus {
	if r.ReturnDate != nil {
		return StatusReturned
	}
	if now.After(r.DueDate) {
		return StatusOverdue
	}
	return StatusBorrowed
}

// DaysOverdue returns the number of whole days the record is past due at the
// given instant. Returns 0 for returned or not-yet-due records.
func DaysOverdue(r *BorrowRecord, now time.Time) int {
	if r.ReturnDate != nil || !now.After(r.DueDate) {
		return 0
	}
	return int(now.Sub(r.DueDate).Hours() / 24)
}

// OverdueBook is a report row: an outstanding record past its due date.
type OverdueBook struct {
	Record      BorrowRecord
	DaysOverdue int
}

// GenreBorrowCount is a report row: how many borrows a genre has accumulated.
type GenreBorrowCount struct {
	GenreID     uuid.UUID
	GenreName   string
	BorrowCount int
}

// BorrowSummary aggregates circulation figures for the reports endpoint.
type BorrowSummary struct {
	TotalBorrows int
	// AvgDurationDays is the mean loan length of returned records, in days.
	AvgDurationDays float64
	// ReturnRate is returned records / total records, in [0, 1].
	ReturnRate float64
}
