package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
	"github.com/SoloAk21/library-manager-backend/pkg/ctxutil"
)

// Logout revokes every refresh token of the authenticated caller.
// The access token stays valid until it expires; its TTL is short.
func (s *Service) Logout(ctx context.Context) error {
	staffID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByStaff(ctx, staffID); err != nil {
		return fmt.Errorf("auth.Logout revoke tokens: %w", err)
	}

	s.log.InfoContext(ctx, "staff logged out",
		slog.String("staff_id", staffID.String()))

	return nil
}
