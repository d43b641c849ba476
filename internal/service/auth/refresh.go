package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SoloAk21/library-manager-backend/internal/auth"
	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Presenting a token that is already revoked revokes every
// session for the account, since it means the token leaked or was replayed.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "unknown refresh token presented")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsRevoked() {
		s.log.WarnContext(ctx, "revoked refresh token replayed",
			slog.String("staff_id", token.StaffID.String()))
		if err := s.tokens.RevokeAllByStaff(ctx, token.StaffID); err != nil {
			return nil, fmt.Errorf("auth.Refresh revoke all: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}

	if token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	staff, err := s.staff.GetByID(ctx, token.StaffID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Account deleted since the token was issued.
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get staff: %w", err)
	}

	if err := s.tokens.Revoke(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	result, err := s.issueTokens(ctx, staff)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}
