package domain

import (
	"time"

	"github.com/google/uuid"
)

// Book is one title in the catalogue. AvailableCopies counts the loanable
// units; it is decremented only by a successful borrow and incremented only
// by a successful return, and never goes below zero.
type Book struct {
	ID              uuid.UUID
	Title           string
	Author          string
	PublishedYear   int
	GenreID         uuid.UUID
	GenreName       string // joined on reads, not stored on the book row
	AvailableCopies int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAvailable reports whether at least one copy can be borrowed.
func (b *Book) IsAvailable() bool {
	return b.AvailableCopies > 0
}

// BookUpdateParams holds the mutable book fields for a partial update.
// Nil means "leave unchanged".
type BookUpdateParams struct {
	Title           *string
	Author          *string
	PublishedYear   *int
	GenreID         *uuid.UUID
	AvailableCopies *int
}
