package service

import (
	"context"
	"strings"

	autherror "github.com/RafalauriSantos/totask-server/internal/errors"
	"github.com/RafalauriSantos/totask-server/internal/task/domain"
	"github.com/RafalauriSantos/totask-server/pkg/constant"
)

type TaskService struct {
	repo domain.TaskRepository
}

func NewTaskService(repo domain.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context, userID int) ([]domain.Task, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *TaskService) Create(ctx context.Context, userID int, text string) (*domain.Task, error) {
	text, err := validateText(text)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, userID, text)
}

func (s *TaskService) UpdateText(ctx context.Context, userID, id int, text string) (*domain.Task, error) {
	text, err := validateText(text)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateText(ctx, userID, id, text)
}

func (s *TaskService) ToggleCompletion(ctx context.Context, userID, id int) (int, error) {
	return s.repo.ToggleCompletion(ctx, userID, id)
}

func (s *TaskService) Delete(ctx context.Context, userID, id int) error {
	return s.repo.Delete(ctx, userID, id)
}

// validateText applies the same rule to create and edit: non-empty after
// trimming, at most 200 characters.
func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" || len([]rune(text)) > constant.MaxTaskTextLength {
		return "", autherror.ErrInvalidTaskText
	}

	return text, nil
}
