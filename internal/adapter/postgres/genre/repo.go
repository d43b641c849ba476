// Package genre implements the Genre repository using PostgreSQL.
package genre

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

// Repo provides genre persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new genre repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a genre by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Genre, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select("id", "name", "created_at", "updated_at").
		From("genres").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get genre query: %w", err)
	}

	var g domain.Genre
	if err := querier.QueryRow(ctx, query, args...).
		Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "genre", id)
	}

	return &g, nil
}

// List returns all genres ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Genre, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select("id", "name", "created_at", "updated_at").
		From("genres").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list genres query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	genres := []*domain.Genre{}
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}

	return genres, nil
}

// Create inserts a new genre. Name uniqueness is enforced by the database.
func (r *Repo) Create(ctx context.Context, g *domain.Genre) (*domain.Genre, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Insert("genres").
		Columns("id", "name").
		Values(g.ID, g.Name).
		Suffix("RETURNING id, name, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create genre query: %w", err)
	}

	var created domain.Genre
	if err := querier.QueryRow(ctx, query, args...).
		Scan(&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "genre", g.ID)
	}

	return &created, nil
}

// Update renames a genre.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name string) (*domain.Genre, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Update("genres").
		Set("name", name).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update genre query: %w", err)
	}

	var g domain.Genre
	if err := querier.QueryRow(ctx, query, args...).
		Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "genre", id)
	}

	return &g, nil
}

// Delete removes a genre. The service layer rejects deletion while books
// still reference it; the FK RESTRICT backs that up at the database.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Delete("genres").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete genre query: %w", err)
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "genre", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("genre %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
