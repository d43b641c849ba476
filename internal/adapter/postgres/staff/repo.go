// Package staff implements the Staff repository using PostgreSQL.
// Password hashes never leave this package except through GetCredentialsByEmail,
// which the auth service uses for login.
package staff

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

const staffColumns = "id, username, email, phone, role, created_at, updated_at"

// Repo provides staff account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new staff repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a staff account by primary key, without the password hash.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select(staffColumns).
		From("staff").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get staff query: %w", err)
	}

	s, err := scanStaff(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "staff", id)
	}

	return s, nil
}

// GetCredentialsByEmail returns the staff account and its bcrypt hash for
// password verification during login.
func (r *Repo) GetCredentialsByEmail(ctx context.Context, email string) (*domain.Staff, string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select(staffColumns, "password_hash").
		From("staff").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, "", fmt.Errorf("build get credentials query: %w", err)
	}

	var (
		s    domain.Staff
		hash string
	)
	err = querier.QueryRow(ctx, query, args...).
		Scan(&s.ID, &s.Username, &s.Email, &s.Phone, &s.Role, &s.CreatedAt, &s.UpdatedAt, &hash)
	if err != nil {
		return nil, "", postgres.MapError(err, "staff", uuid.Nil)
	}

	return &s, hash, nil
}

// List returns all staff accounts ordered by username.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Staff, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select(staffColumns).
		From("staff").
		OrderBy("username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list staff query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	accounts := []*domain.Staff{}
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		accounts = append(accounts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	return accounts, nil
}

// Create inserts a new staff account with its password hash.
// Username and email uniqueness are enforced by the database.
func (r *Repo) Create(ctx context.Context, s *domain.Staff, passwordHash string) (*domain.Staff, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Insert("staff").
		Columns("id", "username", "email", "phone", "role", "password_hash").
		Values(s.ID, s.Username, s.Email, s.Phone, s.Role, passwordHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create staff query: %w", err)
	}

	var id uuid.UUID
	if err := querier.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "staff", s.ID)
	}

	return r.GetByID(ctx, id)
}

// Update applies the non-nil fields of params and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.StaffUpdateParams) (*domain.Staff, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update("staff").Set("updated_at", time.Now())
	if params.Username != nil {
		update = update.Set("username", *params.Username)
	}
	if params.Email != nil {
		update = update.Set("email", *params.Email)
	}
	if params.Phone != nil {
		update = update.Set("phone", *params.Phone)
	}
	if params.Role != nil {
		update = update.Set("role", *params.Role)
	}

	query, args, err := update.Where(sq.Eq{"id": id}).Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update staff query: %w", err)
	}

	var updated uuid.UUID
	if err := querier.QueryRow(ctx, query, args...).Scan(&updated); err != nil {
		return nil, postgres.MapError(err, "staff", id)
	}

	return r.GetByID(ctx, updated)
}

// Delete removes a staff account. Refresh tokens cascade at the database.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Delete("staff").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete staff query: %w", err)
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "staff", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("staff %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanStaff(row pgx.Row) (*domain.Staff, error) {
	var s domain.Staff
	err := row.Scan(&s.ID, &s.Username, &s.Email, &s.Phone, &s.Role,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
