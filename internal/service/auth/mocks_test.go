package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

var _ staffRepo = &staffRepoMock{}

type staffRepoMock struct {
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
	GetCredentialsByEmailFunc func(ctx context.Context, email string) (*domain.Staff, string, error)
	CreateFunc                func(ctx context.Context, s *domain.Staff, passwordHash string) (*domain.Staff, error)

	calls struct {
		Create []struct {
			Staff        *domain.Staff
			PasswordHash string
		}
	}
	lock sync.RWMutex
}

func (mock *staffRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	if mock.GetByIDFunc == nil {
		panic("staffRepoMock.GetByIDFunc: method is nil but staffRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *staffRepoMock) GetCredentialsByEmail(ctx context.Context, email string) (*domain.Staff, string, error) {
	if mock.GetCredentialsByEmailFunc == nil {
		panic("staffRepoMock.GetCredentialsByEmailFunc: method is nil but staffRepo.GetCredentialsByEmail was just called")
	}
	return mock.GetCredentialsByEmailFunc(ctx, email)
}

func (mock *staffRepoMock) Create(ctx context.Context, s *domain.Staff, passwordHash string) (*domain.Staff, error) {
	if mock.CreateFunc == nil {
		panic("staffRepoMock.CreateFunc: method is nil but staffRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Staff        *domain.Staff
		PasswordHash string
	}{Staff: s, PasswordHash: passwordHash})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, s, passwordHash)
}

func (mock *staffRepoMock) CreateCalls() []struct {
	Staff        *domain.Staff
	PasswordHash string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc           func(ctx context.Context, t *domain.RefreshToken) error
	GetByHashFunc        func(ctx context.Context, hash string) (*domain.RefreshToken, error)
	RevokeFunc           func(ctx context.Context, id uuid.UUID) error
	RevokeAllByStaffFunc func(ctx context.Context, staffID uuid.UUID) error

	calls struct {
		Create           []struct{ Token *domain.RefreshToken }
		Revoke           []struct{ ID uuid.UUID }
		RevokeAllByStaff []struct{ StaffID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *tokenRepoMock) Create(ctx context.Context, t *domain.RefreshToken) error {
	if mock.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but tokenRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Token *domain.RefreshToken }{Token: t})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tokenRepoMock) CreateCalls() []struct{ Token *domain.RefreshToken } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *tokenRepoMock) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	if mock.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but tokenRepo.GetByHash was just called")
	}
	return mock.GetByHashFunc(ctx, hash)
}

func (mock *tokenRepoMock) Revoke(ctx context.Context, id uuid.UUID) error {
	if mock.RevokeFunc == nil {
		panic("tokenRepoMock.RevokeFunc: method is nil but tokenRepo.Revoke was just called")
	}
	mock.lock.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.RevokeFunc(ctx, id)
}

func (mock *tokenRepoMock) RevokeCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Revoke
}

func (mock *tokenRepoMock) RevokeAllByStaff(ctx context.Context, staffID uuid.UUID) error {
	if mock.RevokeAllByStaffFunc == nil {
		panic("tokenRepoMock.RevokeAllByStaffFunc: method is nil but tokenRepo.RevokeAllByStaff was just called")
	}
	mock.lock.Lock()
	mock.calls.RevokeAllByStaff = append(mock.calls.RevokeAllByStaff, struct{ StaffID uuid.UUID }{StaffID: staffID})
	mock.lock.Unlock()
	return mock.RevokeAllByStaffFunc(ctx, staffID)
}

func (mock *tokenRepoMock) RevokeAllByStaffCalls() []struct{ StaffID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RevokeAllByStaff
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(staffID uuid.UUID, role string) (string, error)
	ValidateAccessTokenFunc  func(token string) (uuid.UUID, string, error)
	GenerateRefreshTokenFunc func() (string, string, error)
}

func (mock *jwtManagerMock) GenerateAccessToken(staffID uuid.UUID, role string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	return mock.GenerateAccessTokenFunc(staffID, role)
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	if mock.GenerateRefreshTokenFunc == nil {
		panic("jwtManagerMock.GenerateRefreshTokenFunc: method is nil but jwtManager.GenerateRefreshToken was just called")
	}
	return mock.GenerateRefreshTokenFunc()
}

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hash, password string) error
}

func (mock *passwordHasherMock) Hash(password string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	return mock.HashFunc(password)
}

func (mock *passwordHasherMock) Compare(hash, password string) error {
	if mock.CompareFunc == nil {
		panic("passwordHasherMock.CompareFunc: method is nil but passwordHasher.Compare was just called")
	}
	return mock.CompareFunc(hash, password)
}
