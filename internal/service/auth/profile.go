package auth

import (
	"context"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
	"github.com/SoloAk21/library-manager-backend/pkg/ctxutil"
)

// Profile returns the authenticated caller's own staff account.
func (s *Service) Profile(ctx context.Context) (*domain.Staff, error) {
	staffID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.staff.GetByID(ctx, staffID)
}
