// Package staff implements staff account administration. Account creation
// goes through the auth service's signup; this service covers the admin's
// list/update/delete surface.
package staff

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
	"github.com/SoloAk21/library-manager-backend/pkg/ctxutil"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// staffRepo defines the staff repository interface needed by this service.
type staffRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
	List(ctx context.Context) ([]*domain.Staff, error)
	Update(ctx context.Context, id uuid.UUID, params domain.StaffUpdateParams) (*domain.Staff, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements staff account administration.
type Service struct {
	log   *slog.Logger
	staff staffRepo
}

// NewService creates a new staff service.
func NewService(logger *slog.Logger, staff staffRepo) *Service {
	return &Service{
		log:   logger.With("service", "staff"),
		staff: staff,
	}
}

func callerRole(ctx context.Context) (domain.Role, bool) {
	raw, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return "", false
	}
	role := domain.Role(raw)
	return role, role.IsValid()
}

// UpdateInput holds the parameters for a partial staff update.
// Nil means "leave unchanged".
type UpdateInput struct {
	Username *string
	Email    *string
	Phone    *string
	Role     *domain.Role
}

// Validate checks the provided fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Username != nil && *i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not be empty"})
	}
	if i.Email != nil && !emailRe.MatchString(*i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value (allowed: admin, librarian)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List returns all staff accounts.
func (s *Service) List(ctx context.Context) ([]*domain.Staff, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.CanManageStaff() {
		return nil, domain.ErrForbidden
	}

	return s.staff.List(ctx)
}

// Get returns a single staff account.
func (s *Service) Get(ctx context.Context, staffID uuid.UUID) (*domain.Staff, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.CanManageStaff() {
		return nil, domain.ErrForbidden
	}

	return s.staff.GetByID(ctx, staffID)
}

// Update applies a partial update to a staff account, including role changes.
func (s *Service) Update(ctx context.Context, staffID uuid.UUID, input UpdateInput) (*domain.Staff, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.CanManageStaff() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.staff.Update(ctx, staffID, domain.StaffUpdateParams{
		Username: input.Username,
		Email:    input.Email,
		Phone:    input.Phone,
		Role:     input.Role,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "staff updated",
		slog.String("staff_id", staffID.String()))

	return updated, nil
}

// Delete removes a staff account. An admin cannot delete their own account.
func (s *Service) Delete(ctx context.Context, staffID uuid.UUID) error {
	role, ok := callerRole(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !role.CanManageStaff() {
		return domain.ErrForbidden
	}

	if callerID, ok := ctxutil.UserIDFromCtx(ctx); ok && callerID == staffID {
		return domain.NewValidationError("id", "cannot delete own account")
	}

	if err := s.staff.Delete(ctx, staffID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "staff deleted", slog.String("staff_id", staffID.String()))

	return nil
}
