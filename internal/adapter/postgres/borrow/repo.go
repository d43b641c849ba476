// Package borrow implements the BorrowRecord repository using PostgreSQL.
// Records are append-only except for the single return_date update, which is
// guarded so a closed loan can never be reopened or re-closed.
package borrow

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

const recordColumns = `br.id, br.book_id, br.member_id, br.borrow_date, br.due_date, br.return_date, br.created_at,
	b.title, b.author, m.name`

// Repo provides borrow record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new borrow record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectRecords() sq.SelectBuilder {
	return psql.
		Select(recordColumns).
		From("borrow_records br").
		Join("books b ON b.id = br.book_id").
		Join("members m ON m.id = br.member_id")
}

// GetByID returns a borrow record with book and member display fields joined.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BorrowRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := selectRecords().Where(sq.Eq{"br.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get record query: %w", err)
	}

	rec, err := scanRecord(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "borrow record", id)
	}

	return rec, nil
}

// List returns all borrow records, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.BorrowRecord, error) {
	query, args, err := selectRecords().OrderBy("br.borrow_date DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list records query: %w", err)
	}

	return r.queryRecords(ctx, query, args...)
}

// ListByMember returns a member's borrowing history, newest first.
func (r *Repo) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*domain.BorrowRecord, error) {
	query, args, err := selectRecords().
		Where(sq.Eq{"br.member_id": memberID}).
		OrderBy("br.borrow_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list by member query: %w", err)
	}

	return r.queryRecords(ctx, query, args...)
}

// ListOverdue returns outstanding records whose due date has passed,
// most overdue first.
func (r *Repo) ListOverdue(ctx context.Context, now time.Time) ([]*domain.BorrowRecord, error) {
	query, args, err := selectRecords().
		Where("br.return_date IS NULL").
		Where(sq.Lt{"br.due_date": now}).
		OrderBy("br.due_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list overdue query: %w", err)
	}

	return r.queryRecords(ctx, query, args...)
}

// Create inserts a new outstanding borrow record.
func (r *Repo) Create(ctx context.Context, rec *domain.BorrowRecord) (*domain.BorrowRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Insert("borrow_records").
		Columns("id", "book_id", "member_id", "borrow_date", "due_date").
		Values(rec.ID, rec.BookID, rec.MemberID, rec.BorrowDate, rec.DueDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create record query: %w", err)
	}

	var id uuid.UUID
	if err := querier.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "borrow record", rec.ID)
	}

	return r.GetByID(ctx, id)
}

// MarkReturned sets return_date on an outstanding record.
// Returns false when the record was already returned (return_date set); the
// guard in the WHERE clause is what makes double returns impossible.
func (r *Repo) MarkReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx,
		`UPDATE borrow_records
		 SET return_date = $2
		 WHERE id = $1 AND return_date IS NULL`, id, returnedAt)
	if err != nil {
		return false, postgres.MapError(err, "borrow record", id)
	}

	return tag.RowsAffected() == 1, nil
}

// Delete removes a borrow record and reports on the row it actually deleted:
// the book it pointed at and whether the loan was still outstanding at that
// moment. Callers deciding to restore a copy must use this result, not an
// earlier read — a return can commit between the two.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Delete("borrow_records").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING book_id, return_date").
		ToSql()
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("build delete record query: %w", err)
	}

	var (
		bookID     uuid.UUID
		returnDate *time.Time
	)
	if err := querier.QueryRow(ctx, query, args...).Scan(&bookID, &returnDate); err != nil {
		return uuid.Nil, false, postgres.MapError(err, "borrow record", id)
	}

	return bookID, returnDate == nil, nil
}

// CountOutstandingByBook returns the number of open loans against a book.
func (r *Repo) CountOutstandingByBook(ctx context.Context, bookID uuid.UUID) (int, error) {
	return r.countOutstanding(ctx, sq.Eq{"book_id": bookID})
}

// CountOutstandingByMember returns the number of open loans held by a member.
func (r *Repo) CountOutstandingByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	return r.countOutstanding(ctx, sq.Eq{"member_id": memberID})
}

func (r *Repo) countOutstanding(ctx context.Context, pred sq.Eq) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select("COUNT(*)").
		From("borrow_records").
		Where(pred).
		Where("return_date IS NULL").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count outstanding query: %w", err)
	}

	var count int
	if err := querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count outstanding records: %w", err)
	}

	return count, nil
}

// PopularGenres returns borrow counts grouped by genre, most borrowed first.
func (r *Repo) PopularGenres(ctx context.Context) ([]domain.GenreBorrowCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx,
		`SELECT g.id, g.name, COUNT(br.id) AS borrow_count
		 FROM borrow_records br
		 JOIN books b ON b.id = br.book_id
		 JOIN genres g ON g.id = b.genre_id
		 GROUP BY g.id, g.name
		 ORDER BY borrow_count DESC, g.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("popular genres: %w", err)
	}
	defer rows.Close()

	result := []domain.GenreBorrowCount{}
	for rows.Next() {
		var gc domain.GenreBorrowCount
		if err := rows.Scan(&gc.GenreID, &gc.GenreName, &gc.BorrowCount); err != nil {
			return nil, fmt.Errorf("scan genre count: %w", err)
		}
		result = append(result, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("popular genres: %w", err)
	}

	return result, nil
}

// Summary aggregates total borrows, the mean loan length of returned records
// (in days), and the fraction of records that have been returned.
func (r *Repo) Summary(ctx context.Context) (domain.BorrowSummary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.BorrowSummary
	err := querier.QueryRow(ctx,
		`SELECT
			COUNT(*),
			COALESCE(AVG(EXTRACT(EPOCH FROM (return_date - borrow_date)) / 86400)
				FILTER (WHERE return_date IS NOT NULL), 0),
			COALESCE(COUNT(*) FILTER (WHERE return_date IS NOT NULL)::float / NULLIF(COUNT(*), 0), 0)
		 FROM borrow_records`).
		Scan(&s.TotalBorrows, &s.AvgDurationDays, &s.ReturnRate)
	if err != nil {
		return domain.BorrowSummary{}, fmt.Errorf("borrow summary: %w", err)
	}

	return s, nil
}

func (r *Repo) queryRecords(ctx context.Context, query string, args ...any) ([]*domain.BorrowRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query borrow records: %w", err)
	}
	defer rows.Close()

	records := []*domain.BorrowRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan borrow record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query borrow records: %w", err)
	}

	return records, nil
}

func scanRecord(row pgx.Row) (*domain.BorrowRecord, error) {
	var rec domain.BorrowRecord
	err := row.Scan(&rec.ID, &rec.BookID, &rec.MemberID, &rec.BorrowDate,
		&rec.DueDate, &rec.ReturnDate, &rec.CreatedAt,
		&rec.BookTitle, &rec.BookAuthor, &rec.MemberName)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
