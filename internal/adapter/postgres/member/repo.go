// Package member implements the Member repository using PostgreSQL.
// active_borrows is never stored; every read derives it from the count of
// outstanding borrow records.
package member

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

const memberColumns = `m.id, m.name, m.email, m.phone, m.join_date, m.created_at, m.updated_at,
	(SELECT COUNT(*) FROM borrow_records br WHERE br.member_id = m.id AND br.return_date IS NULL) AS active_borrows`

// Repo provides member persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new member repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a member by primary key, with the derived active borrow count.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select(memberColumns).
		From("members m").
		Where(sq.Eq{"m.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get member query: %w", err)
	}

	m, err := scanMember(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "member", id)
	}

	return m, nil
}

// List returns all members ordered by name, each with the derived active
// borrow count. Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select(memberColumns).
		From("members m").
		OrderBy("m.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list members query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := []*domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	return members, nil
}

// Create inserts a new member. Email uniqueness is enforced by the database.
func (r *Repo) Create(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Insert("members").
		Columns("id", "name", "email", "phone", "join_date").
		Values(m.ID, m.Name, m.Email, m.Phone, m.JoinDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create member query: %w", err)
	}

	var id uuid.UUID
	if err := querier.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "member", m.ID)
	}

	return r.GetByID(ctx, id)
}

// Update applies the non-nil fields of params and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.MemberUpdateParams) (*domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update("members").Set("updated_at", time.Now())
	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Email != nil {
		update = update.Set("email", *params.Email)
	}
	if params.Phone != nil {
		update = update.Set("phone", *params.Phone)
	}

	query, args, err := update.Where(sq.Eq{"id": id}).Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update member query: %w", err)
	}

	var updated uuid.UUID
	if err := querier.QueryRow(ctx, query, args...).Scan(&updated); err != nil {
		return nil, postgres.MapError(err, "member", id)
	}

	return r.GetByID(ctx, updated)
}

// Delete removes a member. The service layer rejects deletion while
// outstanding borrow records exist; the FK RESTRICT backs that up.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Delete("members").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete member query: %w", err)
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "member", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("member %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.JoinDate,
		&m.CreatedAt, &m.UpdatedAt, &m.ActiveBorrows)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
