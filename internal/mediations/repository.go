package mediations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/concord-mediation/concord/internal/shared"
)

// RepositoryPort defines data access methods for mediation records.
type RepositoryPort interface {
	Insert(ctx context.Context, mediation Mediation) (*Mediation, error)
	FindByID(ctx context.Context, id string) (*Mediation, error)
	List(ctx context.Context) ([]Mediation, error)
	UpdateByID(ctx context.Context, id string, update Update) (*Mediation, error)
	DeleteByID(ctx context.Context, id string) (*Mediation, error)
}

const mediationColumns = `id, name, description, date, status, created_at, updated_at`

// PGRepository implements RepositoryPort using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Insert stores a new mediation, assigning id and timestamps.
func (r *PGRepository) Insert(ctx context.Context, mediation Mediation) (*Mediation, error) {
	now := time.Now().UTC()
	mediation.ID = uuid.NewString()
	mediation.CreatedAt = now
	mediation.UpdatedAt = now

	_, err := r.pool.Exec(ctx,
		`INSERT INTO mediations (`+mediationColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		mediation.ID, mediation.Name, mediation.Description,
		mediation.Date, mediation.Status, mediation.CreatedAt, mediation.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("mediations: insert: %w", err)
	}
	return &mediation, nil
}

// FindByID fetches a mediation by id.
func (r *PGRepository) FindByID(ctx context.Context, id string) (*Mediation, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+mediationColumns+` FROM mediations WHERE id = $1`, id)
	return scanMediation(row)
}

// List returns all mediations.
func (r *PGRepository) List(ctx context.Context) ([]Mediation, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+mediationColumns+` FROM mediations ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("mediations: list: %w", err)
	}
	defer rows.Close()

	var result []Mediation
	for rows.Next() {
		var m Mediation
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Date,
			&m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("mediations: scan: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

// UpdateByID applies the non-nil fields of update and returns the new row.
func (r *PGRepository) UpdateByID(ctx context.Context, id string, update Update) (*Mediation, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE mediations SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			date = COALESCE($4, date),
			status = COALESCE($5, status),
			updated_at = $6
		WHERE id = $1
		RETURNING `+mediationColumns,
		id, update.Name, update.Description, update.Date, update.Status, time.Now().UTC())
	return scanMediation(row)
}

// DeleteByID removes a mediation and returns the deleted row.
func (r *PGRepository) DeleteByID(ctx context.Context, id string) (*Mediation, error) {
	row := r.pool.QueryRow(ctx,
		`DELETE FROM mediations WHERE id = $1 RETURNING `+mediationColumns, id)
	return scanMediation(row)
}

func scanMediation(row pgx.Row) (*Mediation, error) {
	var m Mediation
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Date,
		&m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

var _ RepositoryPort = (*PGRepository)(nil)
