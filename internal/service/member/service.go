// Package member implements library member management and the per-member
// borrowing history.
package member

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
	"github.com/SoloAk21/library-manager-backend/pkg/ctxutil"
)

// memberRepo defines the member repository interface needed by this service.
type memberRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	Create(ctx context.Context, m *domain.Member) (*domain.Member, error)
	Update(ctx context.Context, id uuid.UUID, params domain.MemberUpdateParams) (*domain.Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// recordRepo defines the borrow record repository interface needed by this service.
type recordRepo interface {
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]*domain.BorrowRecord, error)
	CountOutstandingByMember(ctx context.Context, memberID uuid.UUID) (int, error)
}

// Service implements member operations.
type Service struct {
	log     *slog.Logger
	members memberRepo
	records recordRepo
}

// NewService creates a new member service.
func NewService(logger *slog.Logger, members memberRepo, records recordRepo) *Service {
	return &Service{
		log:     logger.With("service", "member"),
		members: members,
		records: records,
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

// List returns all members with their derived active borrow counts.
func (s *Service) List(ctx context.Context) ([]*domain.Member, error) {
	if _, ok := callerRole(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.members.List(ctx)
}

// Get returns a single member.
func (s *Service) Get(ctx context.Context, memberID uuid.UUID) (*domain.Member, error) {
	if _, ok := callerRole(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.members.GetByID(ctx, memberID)
}

// BorrowingHistory returns a member's loans, newest first. The member must exist.
func (s *Service) BorrowingHistory(ctx context.Context, memberID uuid.UUID) ([]*domain.BorrowRecord, error) {
	if _, ok := callerRole(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, err
	}

	return s.records.ListByMember(ctx, memberID)
}

// Create registers a new member. JoinDate is set server-side.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Member, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.CanManageMembers() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.members.Create(ctx, &domain.Member{
		ID:    uuid.New(),
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "member created",
		slog.String("member_id", created.ID.String()))

	return created, nil
}

// Update applies a partial update to a member.
func (s *Service) Update(ctx context.Context, memberID uuid.UUID, input UpdateInput) (*domain.Member, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.CanManageMembers() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.members.Update(ctx, memberID, domain.MemberUpdateParams{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	})
}

// Delete removes a member. A member holding open loans cannot be deleted.
func (s *Service) Delete(ctx context.Context, memberID uuid.UUID) error {
	role, ok := callerRole(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !role.CanDeleteMembers() {
		return domain.ErrForbidden
	}

	outstanding, err := s.records.CountOutstandingByMember(ctx, memberID)
	if err != nil {
		return fmt.Errorf("member.Delete count outstanding: %w", err)
	}
	if outstanding > 0 {
		return fmt.Errorf("member %s holds %d open loans: %w", memberID, outstanding, domain.ErrConflict)
	}

	if err := s.members.Delete(ctx, memberID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "member deleted", slog.String("member_id", memberID.String()))

	return nil
}
