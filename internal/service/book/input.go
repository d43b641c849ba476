package book

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// CreateInput holds the parameters for adding a book to the catalogue.
type CreateInput struct {
	Title           string
	Author          string
	PublishedYear   int
	GenreID         uuid.UUID
	AvailableCopies int
}

// Validate checks all fields against minYear and collects all errors.
func (i *CreateInput) Validate(minYear int) error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Author == "" {
		errs = append(errs, domain.FieldError{Field: "author", Message: "required"})
	}
	if i.PublishedYear < minYear {
		errs = append(errs, domain.FieldError{Field: "published_year", Message: yearMessage(minYear)})
	}
	if i.GenreID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "genre_id", Message: "required"})
	}
	if i.AvailableCopies < 0 {
		errs = append(errs, domain.FieldError{Field: "available_copies", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for a partial book update.
// Nil means "leave unchanged".
type UpdateInput struct {
	Title           *string
	Author          *string
	PublishedYear   *int
	GenreID         *uuid.UUID
	AvailableCopies *int
}

// Validate checks the provided fields against minYear and collects all errors.
func (i *UpdateInput) Validate(minYear int) error {
	var errs []domain.FieldError

	if i.Title != nil && *i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
	}
	if i.Author != nil && *i.Author == "" {
		errs = append(errs, domain.FieldError{Field: "author", Message: "must not be empty"})
	}
	if i.PublishedYear != nil && *i.PublishedYear < minYear {
		errs = append(errs, domain.FieldError{Field: "published_year", Message: yearMessage(minYear)})
	}
	if i.GenreID != nil && *i.GenreID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "genre_id", Message: "must not be empty"})
	}
	if i.AvailableCopies != nil && *i.AvailableCopies < 0 {
		errs = append(errs, domain.FieldError{Field: "available_copies", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func yearMessage(minYear int) string {
	return "must be " + strconv.Itoa(minYear) + " or later"
}
