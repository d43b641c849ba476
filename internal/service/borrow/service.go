// Package borrow implements the circulation business logic: recording loans,
// processing returns, and the reports built on top of the loan history.
package borrow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/config"
	"github.com/SoloAk21/library-manager-backend/internal/domain"
	"github.com/SoloAk21/library-manager-backend/pkg/ctxutil"
)

// bookRepo defines the book repository interface needed by the borrow service.
type bookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	DecrementAvailable(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementAvailable(ctx context.Context, id uuid.UUID) error
}

// memberRepo defines the member repository interface needed by the borrow service.
type memberRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
}

// recordRepo defines the borrow record repository interface needed by the borrow service.
type recordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BorrowRecord, error)
	List(ctx context.Context) ([]*domain.BorrowRecord, error)
	ListOverdue(ctx context.Context, now time.Time) ([]*domain.BorrowRecord, error)
	Create(ctx context.Context, rec *domain.BorrowRecord) (*domain.BorrowRecord, error)
	MarkReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bookID uuid.UUID, wasOutstanding bool, err error)
	PopularGenres(ctx context.Context) ([]domain.GenreBorrowCount, error)
	Summary(ctx context.Context) (domain.BorrowSummary, error)
}

// txManager defines the transaction manager interface needed by the borrow service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the borrow/return business logic.
type Service struct {
	log     *slog.Logger
	books   bookRepo
	members memberRepo
	records recordRepo
	tx      txManager
	cfg     config.LibraryConfig

	// now is stubbed in tests.
	now func() time.Time
}

// NewService creates a new borrow service.
func NewService(
	logger *slog.Logger,
	books bookRepo,
	members memberRepo,
	records recordRepo,
	tx txManager,
	cfg config.LibraryConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "borrow"),
		books:   books,
		members: members,
		records: records,
		tx:      tx,
		cfg:     cfg,
		now:     time.Now,
	}
}

// callerRole extracts the authenticated caller's role from the context.
func callerRole(ctx context.Context) (domain.Role, bool) {
	raw, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return "", false
	}
	role := domain.Role(raw)
	return role, role.IsValid()
}
