package domain

import (
	"time"

	"github.com/google/uuid"
)

// Member is a library patron. ActiveBorrows is derived from outstanding
// borrow records at read time and is never mutated directly.
type Member struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Phone         string
	JoinDate      time.Time
	ActiveBorrows int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MemberUpdateParams holds the mutable member fields for a partial update.
// Nil means "leave unchanged".
type MemberUpdateParams struct {
	Name  *string
	Email *string
	Phone *string
}
