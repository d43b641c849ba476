package book_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/book"
	"github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/testhelper"
	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// newRepo is a test helper that sets up the DB and returns a ready Repo.
func newRepo(t *testing.T) (*book.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return book.New(pool), pool
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	genre := testhelper.SeedGenre(t, pool)

	b := &domain.Book{
		ID:              uuid.New(),
		Title:           "The Left Hand of Darkness",
		Author:          "Ursula K. Le Guin",
		PublishedYear:   1969,
		GenreID:         genre.ID,
		AvailableCopies: 3,
	}

	got, err := repo.Create(ctx, b)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.Title != b.Title {
		t.Errorf("Title mismatch: got %q, want %q", got.Title, b.Title)
	}
	if got.GenreName != genre.Name {
		t.Errorf("GenreName mismatch: got %q, want %q", got.GenreName, genre.Name)
	}
	if got.AvailableCopies != 3 {
		t.Errorf("AvailableCopies mismatch: got %d, want 3", got.AvailableCopies)
	}
}

func TestRepo_Create_UnknownGenre(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	b := &domain.Book{
		ID:              uuid.New(),
		Title:           "Orphan",
		Author:          "Nobody",
		PublishedYear:   2001,
		GenreID:         uuid.New(), // no such genre
		AvailableCopies: 1,
	}

	_, err := repo.Create(ctx, b)
	assertIsDomainError(t, err, domain.ErrConflict)
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_Update_Partial(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	genre := testhelper.SeedGenre(t, pool)
	seeded := testhelper.SeedBook(t, pool, genre.ID, 2)

	newTitle := "Renamed"
	got, err := repo.Update(ctx, seeded.ID, domain.BookUpdateParams{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}

	if got.Title != newTitle {
		t.Errorf("Title mismatch: got %q, want %q", got.Title, newTitle)
	}
	if got.Author != seeded.Author {
		t.Errorf("Author should be unchanged: got %q, want %q", got.Author, seeded.Author)
	}
	if got.AvailableCopies != 2 {
		t.Errorf("AvailableCopies should be unchanged: got %d, want 2", got.AvailableCopies)
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	title := "x"
	_, err := repo.Update(ctx, uuid.New(), domain.BookUpdateParams{Title: &title})
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_DecrementAvailable(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	genre := testhelper.SeedGenre(t, pool)
	seeded := testhelper.SeedBook(t, pool, genre.ID, 1)

	ok, err := repo.DecrementAvailable(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("DecrementAvailable: unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected first decrement to succeed")
	}

	// Last copy is gone; the next decrement must refuse rather than go negative.
	ok, err = repo.DecrementAvailable(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("DecrementAvailable: unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected decrement at zero copies to report false")
	}

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.AvailableCopies != 0 {
		t.Errorf("AvailableCopies: got %d, want 0", got.AvailableCopies)
	}
}

func TestRepo_IncrementAvailable(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	genre := testhelper.SeedGenre(t, pool)
	seeded := testhelper.SeedBook(t, pool, genre.ID, 0)

	if err := repo.IncrementAvailable(ctx, seeded.ID); err != nil {
		t.Fatalf("IncrementAvailable: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.AvailableCopies != 1 {
		t.Errorf("AvailableCopies: got %d, want 1", got.AvailableCopies)
	}
}

func TestRepo_Delete_WithOutstandingBorrow(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	genre := testhelper.SeedGenre(t, pool)
	seeded := testhelper.SeedBook(t, pool, genre.ID, 1)
	member := testhelper.SeedMember(t, pool)
	testhelper.SeedBorrowRecord(t, pool, seeded.ID, member.ID)

	err := repo.Delete(ctx, seeded.ID)
	assertIsDomainError(t, err, domain.ErrConflict)
}

func TestRepo_Delete_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	err := repo.Delete(ctx, uuid.New())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_CountByGenre(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	genre := testhelper.SeedGenre(t, pool)
	testhelper.SeedBook(t, pool, genre.ID, 1)
	testhelper.SeedBook(t, pool, genre.ID, 1)

	count, err := repo.CountByGenre(ctx, genre.ID)
	if err != nil {
		t.Fatalf("CountByGenre: unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("count: got %d, want 2", count)
	}
}

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
