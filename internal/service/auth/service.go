// Package auth implements staff authentication: password login, signup,
// token refresh with rotation, and logout.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/config"
	"github.com/SoloAk21/library-manager-backend/internal/domain"
	"github.com/SoloAk21/library-manager-backend/pkg/ctxutil"
)

// staffRepo defines the staff repository interface needed by the auth service.
type staffRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
	GetCredentialsByEmail(ctx context.Context, email string) (*domain.Staff, string, error)
	Create(ctx context.Context, s *domain.Staff, passwordHash string) (*domain.Staff, error)
}

// tokenRepo defines the refresh token repository interface needed by the auth service.
type tokenRepo interface {
	Create(ctx context.Context, t *domain.RefreshToken) error
	GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeAllByStaff(ctx context.Context, staffID uuid.UUID) error
}

// jwtManager defines the JWT token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(staffID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// passwordHasher abstracts bcrypt so tests do not pay its cost.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	staff  staffRepo
	tokens tokenRepo
	jwt    jwtManager
	hasher passwordHasher
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	staff staffRepo,
	tokens tokenRepo,
	jwt jwtManager,
	hasher passwordHasher,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		staff:  staff,
		tokens: tokens,
		jwt:    jwt,
		hasher: hasher,
		cfg:    cfg,
	}
}

// ValidateToken checks an access token and returns the staff ID and role.
// Used by the auth middleware on every protected request.
func (s *Service) ValidateToken(token string) (uuid.UUID, domain.Role, error) {
	staffID, rawRole, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}

	role := domain.Role(rawRole)
	if !role.IsValid() {
		return uuid.Nil, "", domain.ErrUnauthorized
	}

	return staffID, role, nil
}

// issueTokens generates an access/refresh token pair for the staff account and
// stores the refresh token hash.
func (s *Service) issueTokens(ctx context.Context, staff *domain.Staff) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(staff.ID, staff.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refreshToken := &domain.RefreshToken{
		ID:        uuid.New(),
		StaffID:   staff.ID,
		TokenHash: hashRefresh,
		ExpiresAt: time.Now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		Staff:        staff,
	}, nil
}

func callerRole(ctx context.Context) (domain.Role, bool) {
	raw, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return "", false
	}
	role := domain.Role(raw)
	return role, role.IsValid()
}
