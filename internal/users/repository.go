package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/concord-mediation/concord/internal/shared"
)

// RepositoryPort defines data access methods for users. Uniqueness of name
// and email lives in the store; violations surface as shared.ErrConflict.
type RepositoryPort interface {
	Insert(ctx context.Context, user User) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	UpdateByID(ctx context.Context, id string, update Update) (*User, error)
	DeleteByID(ctx context.Context, id string) (*User, error)
}

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

const userColumns = `id, name, email, password_hash, registered_date, status, created_at, updated_at`

// PGRepository implements RepositoryPort using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Insert stores a new user, assigning id and timestamps.
func (r *PGRepository) Insert(ctx context.Context, user User) (*User, error) {
	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Name, user.Email, user.PasswordHash,
		user.RegisteredDate, user.Status, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return nil, translateError(err, "users: insert")
	}
	return &user, nil
}

// FindByID fetches a user by id.
func (r *PGRepository) FindByID(ctx context.Context, id string) (*User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// FindByEmail fetches a user by its unique login key.
func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// List returns all users.
func (r *PGRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("users: list: %w", err)
	}
	defer rows.Close()

	var result []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
			&user.RegisteredDate, &user.Status, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("users: scan: %w", err)
		}
		result = append(result, user)
	}
	return result, rows.Err()
}

// UpdateByID applies the non-nil fields of update and returns the new row.
func (r *PGRepository) UpdateByID(ctx context.Context, id string, update Update) (*User, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE users SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			password_hash = COALESCE($4, password_hash),
			registered_date = COALESCE($5, registered_date),
			status = COALESCE($6, status),
			updated_at = $7
		WHERE id = $1
		RETURNING `+userColumns,
		id, update.Name, update.Email, update.PasswordHash,
		update.RegisteredDate, update.Status, time.Now().UTC())
	user, err := scanUser(row)
	if err != nil {
		return nil, translateError(err, "users: update")
	}
	return user, nil
}

// DeleteByID removes a user and returns the deleted row.
func (r *PGRepository) DeleteByID(ctx context.Context, id string) (*User, error) {
	row := r.pool.QueryRow(ctx,
		`DELETE FROM users WHERE id = $1 RETURNING `+userColumns, id)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.RegisteredDate, &user.Status, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// translateError converts store constraint violations into the domain
// taxonomy so callers stay decoupled from PostgreSQL signaling.
func translateError(err error, op string) error {
	if errors.Is(err, shared.ErrNotFound) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return shared.ErrConflict
	}
	return fmt.Errorf("%s: %w", op, err)
}

var _ RepositoryPort = (*PGRepository)(nil)
