package member

import (
	"regexp"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	// phoneRe matches the "(XXX) XXX-XXXX" format used on membership forms.
	phoneRe = regexp.MustCompile(`^\(\d{3}\)\s\d{3}-\d{4}$`)
)

// CreateInput holds the parameters for registering a member.
type CreateInput struct {
	Name  string
	Email string
	Phone string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !emailRe.MatchString(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if i.Phone == "" {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required"})
	} else if !phoneRe.MatchString(i.Phone) {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "must match (XXX) XXX-XXXX"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for a partial member update.
// Nil means "leave unchanged".
type UpdateInput struct {
	Name  *string
	Email *string
	Phone *string
}

// Validate checks the provided fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && *i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Email != nil && !emailRe.MatchString(*i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if i.Phone != nil && !phoneRe.MatchString(*i.Phone) {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "must match (XXX) XXX-XXXX"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
