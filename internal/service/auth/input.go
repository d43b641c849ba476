package auth

import (
	"regexp"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

const minPasswordLength = 6

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// LoginInput holds the credentials for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i *LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !emailRe.MatchString(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SignupInput holds the parameters for creating a staff account.
type SignupInput struct {
	Username string
	Email    string
	Phone    string
	Password string
	Role     domain.Role
}

// Validate checks all fields and collects all errors.
func (i *SignupInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !emailRe.MatchString(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short (min 6)"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value (allowed: admin, librarian)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RefreshInput holds the raw refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// Validate checks all fields and collects all errors.
func (i *RefreshInput) Validate() error {
	if i.RefreshToken == "" {
		return domain.NewValidationError("refresh_token", "required")
	}
	return nil
}
