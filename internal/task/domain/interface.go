package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_task_repository.go -package=mocks github.com/RafalauriSantos/totask-server/internal/task/domain TaskRepository

// TaskRepository scopes every operation by the owning user. Mutations are
// single conditional statements on (id, user_id), so a row owned by someone
// else behaves exactly like a row that does not exist.
type TaskRepository interface {
	ListByUserID(ctx context.Context, userID int) ([]Task, error)
	Create(ctx context.Context, userID int, text string) (*Task, error)
	UpdateText(ctx context.Context, userID, id int, text string) (*Task, error)
	ToggleCompletion(ctx context.Context, userID, id int) (int, error)
	Delete(ctx context.Context, userID, id int) error
}
