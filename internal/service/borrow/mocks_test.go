package borrow

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

var _ bookRepo = &bookRepoMock{}

type bookRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	DecrementAvailableFunc func(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementAvailableFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID            []struct{ ID uuid.UUID }
		DecrementAvailable []struct{ ID uuid.UUID }
		IncrementAvailable []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *bookRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if mock.GetByIDFunc == nil {
		panic("bookRepoMock.GetByIDFunc: method is nil but bookRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *bookRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *bookRepoMock) DecrementAvailable(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.DecrementAvailableFunc == nil {
		panic("bookRepoMock.DecrementAvailableFunc: method is nil but bookRepo.DecrementAvailable was just called")
	}
	mock.lock.Lock()
	mock.calls.DecrementAvailable = append(mock.calls.DecrementAvailable, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DecrementAvailableFunc(ctx, id)
}

func (mock *bookRepoMock) DecrementAvailableCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DecrementAvailable
}

func (mock *bookRepoMock) IncrementAvailable(ctx context.Context, id uuid.UUID) error {
	if mock.IncrementAvailableFunc == nil {
		panic("bookRepoMock.IncrementAvailableFunc: method is nil but bookRepo.IncrementAvailable was just called")
	}
	mock.lock.Lock()
	mock.calls.IncrementAvailable = append(mock.calls.IncrementAvailable, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.IncrementAvailableFunc(ctx, id)
}

func (mock *bookRepoMock) IncrementAvailableCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.IncrementAvailable
}

var _ memberRepo = &memberRepoMock{}

type memberRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Member, error)

	calls struct {
		GetByID []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *memberRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	if mock.GetByIDFunc == nil {
		panic("memberRepoMock.GetByIDFunc: method is nil but memberRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *memberRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.BorrowRecord, error)
	ListFunc          func(ctx context.Context) ([]*domain.BorrowRecord, error)
	ListOverdueFunc   func(ctx context.Context, now time.Time) ([]*domain.BorrowRecord, error)
	CreateFunc        func(ctx context.Context, rec *domain.BorrowRecord) (*domain.BorrowRecord, error)
	MarkReturnedFunc  func(ctx context.Context, id uuid.UUID, returnedAt time.Time) (bool, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error)
	PopularGenresFunc func(ctx context.Context) ([]domain.GenreBorrowCount, error)
	SummaryFunc       func(ctx context.Context) (domain.BorrowSummary, error)

	calls struct {
		GetByID      []struct{ ID uuid.UUID }
		Create       []struct{ Rec *domain.BorrowRecord }
		MarkReturned []struct {
			ID         uuid.UUID
			ReturnedAt time.Time
		}
		Delete []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *recordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.BorrowRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("recordRepoMock.GetByIDFunc: method is nil but recordRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *recordRepoMock) List(ctx context.Context) ([]*domain.BorrowRecord, error) {
	if mock.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but recordRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}

func (mock *recordRepoMock) ListOverdue(ctx context.Context, now time.Time) ([]*domain.BorrowRecord, error) {
	if mock.ListOverdueFunc == nil {
		panic("recordRepoMock.ListOverdueFunc: method is nil but recordRepo.ListOverdue was just called")
	}
	return mock.ListOverdueFunc(ctx, now)
}

func (mock *recordRepoMock) Create(ctx context.Context, rec *domain.BorrowRecord) (*domain.BorrowRecord, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Rec *domain.BorrowRecord }{Rec: rec})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordRepoMock) CreateCalls() []struct{ Rec *domain.BorrowRecord } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *recordRepoMock) MarkReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) (bool, error) {
	if mock.MarkReturnedFunc == nil {
		panic("recordRepoMock.MarkReturnedFunc: method is nil but recordRepo.MarkReturned was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkReturned = append(mock.calls.MarkReturned, struct {
		ID         uuid.UUID
		ReturnedAt time.Time
	}{ID: id, ReturnedAt: returnedAt})
	mock.lock.Unlock()
	return mock.MarkReturnedFunc(ctx, id, returnedAt)
}

func (mock *recordRepoMock) MarkReturnedCalls() []struct {
	ID         uuid.UUID
	ReturnedAt time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkReturned
}

func (mock *recordRepoMock) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error) {
	if mock.DeleteFunc == nil {
		panic("recordRepoMock.DeleteFunc: method is nil but recordRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *recordRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *recordRepoMock) PopularGenres(ctx context.Context) ([]domain.GenreBorrowCount, error) {
	if mock.PopularGenresFunc == nil {
		panic("recordRepoMock.PopularGenresFunc: method is nil but recordRepo.PopularGenres was just called")
	}
	return mock.PopularGenresFunc(ctx)
}

func (mock *recordRepoMock) Summary(ctx context.Context) (domain.BorrowSummary, error) {
	if mock.SummaryFunc == nil {
		panic("recordRepoMock.SummaryFunc: method is nil but recordRepo.Summary was just called")
	}
	return mock.SummaryFunc(ctx)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
