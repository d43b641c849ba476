// Package token implements refresh token persistence using PostgreSQL.
// Only SHA-256 hashes are stored; the raw token never touches the database.
package token

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres"
	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new refresh token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a new refresh token hash.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Insert("refresh_tokens").
		Columns("id", "staff_id", "token_hash", "expires_at").
		Values(t.ID, t.StaffID, t.TokenHash, t.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create token query: %w", err)
	}

	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "refresh token", t.ID)
	}

	return nil
}

// GetByHash looks up a token by its SHA-256 hash, revoked or not.
// The service decides whether a revoked or expired token is usable.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select("id", "staff_id", "token_hash", "expires_at", "created_at", "revoked_at").
		From("refresh_tokens").
		Where(sq.Eq{"token_hash": hash}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get token query: %w", err)
	}

	var t domain.RefreshToken
	err = querier.QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.StaffID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt)
	if err != nil {
		return nil, postgres.MapError(err, "refresh token", uuid.Nil)
	}

	return &t, nil
}

// Revoke marks a single token as revoked. Revoking twice is a no-op.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Update("refresh_tokens").
		Set("revoked_at", time.Now()).
		Where(sq.Eq{"id": id}).
		Where("revoked_at IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke token query: %w", err)
	}

	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "refresh token", id)
	}

	return nil
}

// RevokeAllByStaff revokes every outstanding token for a staff account.
// Used on logout and when a refresh token is replayed after rotation.
func (r *Repo) RevokeAllByStaff(ctx context.Context, staffID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Update("refresh_tokens").
		Set("revoked_at", time.Now()).
		Where(sq.Eq{"staff_id": staffID}).
		Where("revoked_at IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke all tokens query: %w", err)
	}

	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "refresh token", staffID)
	}

	return nil
}

// DeleteExpired removes tokens past their expiry and returns how many were
// deleted. Run periodically by the cleanup command.
func (r *Repo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Delete("refresh_tokens").
		Where(sq.Lt{"expires_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired query: %w", err)
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}

	return tag.RowsAffected(), nil
}
