package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedGenre creates a genre with a unique name.
func SeedGenre(t *testing.T, pool *pgxpool.Pool) domain.Genre {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	genre := domain.Genre{
		ID:        uuid.New(),
		Name:      "Genre " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO genres (id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		genre.ID, genre.Name, genre.CreatedAt, genre.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGenre insert: %v", err)
	}

	return genre
}

// SeedBook creates a book in the given genre with the given number of
// available copies.
func SeedBook(t *testing.T, pool *pgxpool.Pool, genreID uuid.UUID, copies int) domain.Book {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	book := domain.Book{
		ID:              uuid.New(),
		Title:           "Book " + suffix,
		Author:          "Author " + suffix,
		PublishedYear:   1999,
		GenreID:         genreID,
		AvailableCopies: copies,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO books (id, title, author, published_year, genre_id, available_copies, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		book.ID, book.Title, book.Author, book.PublishedYear, book.GenreID, book.AvailableCopies, book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBook insert: %v", err)
	}

	return book
}

// SeedMember creates a member with a unique email.
func SeedMember(t *testing.T, pool *pgxpool.Pool) domain.Member {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	member := domain.Member{
		ID:        uuid.New(),
		Name:      "Member " + suffix,
		Email:     "member-" + suffix + "@example.com",
		Phone:     "(555) 123-4567",
		JoinDate:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO members (id, name, email, phone, join_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		member.ID, member.Name, member.Email, member.Phone, member.JoinDate, member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember insert: %v", err)
	}

	return member
}

// SeedBorrowRecord creates an outstanding borrow record due 14 days out.
func SeedBorrowRecord(t *testing.T, pool *pgxpool.Pool, bookID, memberID uuid.UUID) domain.BorrowRecord {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.BorrowRecord{
		ID:         uuid.New(),
		BookID:     bookID,
		MemberID:   memberID,
		BorrowDate: now,
		DueDate:    now.Add(14 * 24 * time.Hour),
		CreatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO borrow_records (id, book_id, member_id, borrow_date, due_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.BookID, rec.MemberID, rec.BorrowDate, rec.DueDate, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBorrowRecord insert: %v", err)
	}

	return rec
}

// SeedStaff creates a staff account with the given role. The password hash is
// a fixed bcrypt hash of "password123".
func SeedStaff(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Staff {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	staff := domain.Staff{
		ID:        uuid.New(),
		Username:  "staff-" + suffix,
		Email:     "staff-" + suffix + "@example.com",
		Phone:     "(555) 987-6543",
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// bcrypt hash of "password123", cost 10
	const hash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	_, err := pool.Exec(ctx,
		`INSERT INTO staff (id, username, email, phone, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		staff.ID, staff.Username, staff.Email, staff.Phone, staff.Role, hash, staff.CreatedAt, staff.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStaff insert: %v", err)
	}

	return staff
}
