package book

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

var _ bookRepo = &bookRepoMock{}

type bookRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	ListFunc    func(ctx context.Context) ([]*domain.Book, error)
	CreateFunc  func(ctx context.Context, b *domain.Book) (*domain.Book, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.BookUpdateParams) (*domain.Book, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct{ Book *domain.Book }
		Delete []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *bookRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if mock.GetByIDFunc == nil {
		panic("bookRepoMock.GetByIDFunc: method is nil but bookRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *bookRepoMock) List(ctx context.Context) ([]*domain.Book, error) {
	if mock.ListFunc == nil {
		panic("bookRepoMock.ListFunc: method is nil but bookRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}

func (mock *bookRepoMock) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	if mock.CreateFunc == nil {
		panic("bookRepoMock.CreateFunc: method is nil but bookRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Book *domain.Book }{Book: b})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *bookRepoMock) CreateCalls() []struct{ Book *domain.Book } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *bookRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.BookUpdateParams) (*domain.Book, error) {
	if mock.UpdateFunc == nil {
		panic("bookRepoMock.UpdateFunc: method is nil but bookRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *bookRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("bookRepoMock.DeleteFunc: method is nil but bookRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *bookRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

var _ genreRepo = &genreRepoMock{}

type genreRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Genre, error)
}

func (mock *genreRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Genre, error) {
	if mock.GetByIDFunc == nil {
		panic("genreRepoMock.GetByIDFunc: method is nil but genreRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	CountOutstandingByBookFunc func(ctx context.Context, bookID uuid.UUID) (int, error)
}

func (mock *recordRepoMock) CountOutstandingByBook(ctx context.Context, bookID uuid.UUID) (int, error) {
	if mock.CountOutstandingByBookFunc == nil {
		panic("recordRepoMock.CountOutstandingByBookFunc: method is nil but recordRepo.CountOutstandingByBook was just called")
	}
	return mock.CountOutstandingByBookFunc(ctx, bookID)
}
