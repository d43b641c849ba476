package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// Signup creates a new staff account. Only an admin may create accounts, so a
// fresh deployment bootstraps its first admin with the create-admin command.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*domain.Staff, error) {
	role, ok := callerRole(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.CanManageStaff() {
		return nil, domain.ErrForbidden
	}

	input.Email = strings.TrimSpace(input.Email)
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup hash password: %w", err)
	}

	created, err := s.staff.Create(ctx, &domain.Staff{
		ID:       uuid.New(),
		Username: input.Username,
		Email:    input.Email,
		Phone:    input.Phone,
		Role:     input.Role,
	}, hash)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "staff account created",
		slog.String("staff_id", created.ID.String()),
		slog.String("role", created.Role.String()))

	return created, nil
}
