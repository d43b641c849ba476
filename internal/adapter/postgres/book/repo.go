// Package book implements the Book repository using PostgreSQL.
// It owns the conditional copy-count updates that keep available_copies
// non-negative under concurrent borrows.
package book

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres"
	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const bookColumns = "b.id, b.title, b.author, b.published_year, b.genre_id, g.name, b.available_copies, b.created_at, b.updated_at"

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new book repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a book by primary key with its genre name joined.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select(bookColumns).
		From("books b").
		LeftJoin("genres g ON g.id = b.genre_id").
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get book query: %w", err)
	}

	b, err := scanBook(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "book", id)
	}

	return b, nil
}

// List returns all books ordered by title, with genre names joined.
// Returns an empty slice (not nil) when the catalogue is empty.
func (r *Repo) List(ctx context.Context) ([]*domain.Book, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select(bookColumns).
		From("books b").
		LeftJoin("genres g ON g.id = b.genre_id").
		OrderBy("b.title ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list books query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := []*domain.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

// Create inserts a new book and returns the persisted row.
func (r *Repo) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Insert("books").
		Columns("id", "title", "author", "published_year", "genre_id", "available_copies").
		Values(b.ID, b.Title, b.Author, b.PublishedYear, b.GenreID, b.AvailableCopies).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create book query: %w", err)
	}

	var id uuid.UUID
	if err := querier.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "book", b.ID)
	}

	return r.GetByID(ctx, id)
}

// Update applies the non-nil fields of params and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.BookUpdateParams) (*domain.Book, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update("books").Set("updated_at", time.Now())
	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Author != nil {
		update = update.Set("author", *params.Author)
	}
	if params.PublishedYear != nil {
		update = update.Set("published_year", *params.PublishedYear)
	}
	if params.GenreID != nil {
		update = update.Set("genre_id", *params.GenreID)
	}
	if params.AvailableCopies != nil {
		update = update.Set("available_copies", *params.AvailableCopies)
	}

	query, args, err := update.Where(sq.Eq{"id": id}).Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update book query: %w", err)
	}

	var updated uuid.UUID
	if err := querier.QueryRow(ctx, query, args...).Scan(&updated); err != nil {
		return nil, postgres.MapError(err, "book", id)
	}

	return r.GetByID(ctx, updated)
}

// Delete removes a book. The service layer rejects deletion while outstanding
// borrow records exist; the FK RESTRICT backs that up at the database.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Delete("books").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete book query: %w", err)
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("book %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DecrementAvailable atomically takes one copy if any are left.
// Returns false when the book had no available copies (the caller lost the
// last-copy race); the WHERE clause is what keeps the count non-negative.
func (r *Repo) DecrementAvailable(ctx context.Context, id uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx,
		`UPDATE books
		 SET available_copies = available_copies - 1, updated_at = now()
		 WHERE id = $1 AND available_copies > 0`, id)
	if err != nil {
		return false, postgres.MapError(err, "book", id)
	}

	return tag.RowsAffected() == 1, nil
}

// IncrementAvailable returns one copy to the shelf.
func (r *Repo) IncrementAvailable(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx,
		`UPDATE books
		 SET available_copies = available_copies + 1, updated_at = now()
		 WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("book %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CountByGenre returns how many books reference the given genre.
func (r *Repo) CountByGenre(ctx context.Context, genreID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select("COUNT(*)").
		From("books").
		Where(sq.Eq{"genre_id": genreID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count by genre query: %w", err)
	}

	var count int
	if err := querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count books by genre: %w", err)
	}

	return count, nil
}

func scanBook(row pgx.Row) (*domain.Book, error) {
	var (
		b         domain.Book
		genreName *string
	)
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.PublishedYear, &b.GenreID,
		&genreName, &b.AvailableCopies, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if genreName != nil {
		b.GenreName = *genreName
	}
	return &b, nil
}
