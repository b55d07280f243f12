package postgres

import (
	"context"
	"errors"
	"fmt"

	autherror "github.com/RafalauriSantos/totask-server/internal/errors"
	"github.com/RafalauriSantos/totask-server/internal/task/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUserID(ctx context.Context, userID int) ([]domain.Task, error) {
	query := `
		SELECT id, texto, concluida, user_id
		FROM tarefas
		WHERE user_id = $1
		ORDER BY id ASC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return tasks, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID int, text string) (*domain.Task, error) {
	query := `
		INSERT INTO tarefas (texto, user_id)
		VALUES ($1, $2)
		RETURNING id, texto, concluida;
	`
	task := domain.Task{UserID: userID}
	err := r.db.QueryRow(ctx, query, text, userID).Scan(&task.ID, &task.Text, &task.Completed)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &task, nil
}

func (r *PostgresRepository) UpdateText(ctx context.Context, userID, id int, text string) (*domain.Task, error) {
	query := `
		UPDATE tarefas
		SET texto = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, texto, concluida;
	`
	task := domain.Task{UserID: userID}
	err := r.db.QueryRow(ctx, query, text, id, userID).Scan(&task.ID, &task.Text, &task.Completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, autherror.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task text: %w", err)
	}

	return &task, nil
}

func (r *PostgresRepository) ToggleCompletion(ctx context.Context, userID, id int) (int, error) {
	query := `
		UPDATE tarefas
		SET concluida = 1 - concluida
		WHERE id = $1 AND user_id = $2
		RETURNING concluida;
	`
	var completed int
	err := r.db.QueryRow(ctx, query, id, userID).Scan(&completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, autherror.ErrTaskNotFound
		}
		return 0, fmt.Errorf("failed to toggle task: %w", err)
	}

	return completed, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tarefas WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrTaskNotFound
	}

	return nil
}
