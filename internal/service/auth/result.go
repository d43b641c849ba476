package auth

import (
	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// AuthResult bundles the token pair and the authenticated staff account.
// RefreshToken is the raw token; only its hash is ever persisted.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	Staff        *domain.Staff
}
