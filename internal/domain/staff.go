package domain

import (
	"time"

	"github.com/google/uuid"
)

// Staff is an authenticated staff account (admin or librarian).
// The password hash lives only in the persistence layer.
type Staff struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Phone     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaffUpdateParams holds the mutable staff fields for a partial update.
// Nil means "leave unchanged".
type StaffUpdateParams struct {
	Username *string
	Email    *string
	Phone    *string
	Role     *Role
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	StaffID   uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
