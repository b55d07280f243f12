package postgres

import (
	"context"
	"errors"
	"fmt"

	autherror "github.com/RafalauriSantos/totask-server/internal/errors"

	"github.com/RafalauriSantos/totask-server/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// PgxIface is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return autherror.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *PostgresRepository) StoreResetToken(ctx context.Context, rt *domain.ResetToken) error {
	query := `INSERT INTO reset_tokens (id, user_id, token, expires_at, created_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, rt.ID, rt.UserID, rt.Token, rt.ExpiresAt, rt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	return nil
}

// ConsumePasswordReset runs one transaction: delete the token if it is still
// live, update the owner's password hash, then drop every other token the
// owner has outstanding so none of them can be replayed.
func (r *PostgresRepository) ConsumePasswordReset(ctx context.Context, token, newPasswordHash string) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var userID int
	err = tx.QueryRow(ctx,
		`DELETE FROM reset_tokens WHERE token = $1 AND expires_at > now() RETURNING user_id`,
		token).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, autherror.ErrInvalidResetToken
		}
		return 0, fmt.Errorf("failed to consume reset token: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`,
		newPasswordHash, userID); err != nil {
		return 0, fmt.Errorf("failed to update password: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM reset_tokens WHERE user_id = $1`, userID); err != nil {
		return 0, fmt.Errorf("failed to clear reset tokens: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit password reset: %w", err)
	}

	return userID, nil
}
