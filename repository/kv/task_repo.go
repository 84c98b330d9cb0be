package kv

import (
	"context"
	"encoding/json"

	"github.com/undoapp/tracker/domain"
	"github.com/undoapp/tracker/internal/infrastructure/storage"
)

// TaskRepository stores each account's tasks as one ordered JSON array
// under a per-account key. Timestamps round-trip as RFC 3339 strings.
type TaskRepository struct {
	store storage.Store
}

func NewTaskRepository(store storage.Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) Load(ctx context.Context, accountID string) ([]domain.Task, error) {
	raw, found, err := r.store.Get(tasksKey(accountID))
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "load tasks", err)
	}
	if !found {
		return []domain.Task{}, nil
	}
	var tasks []domain.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "decode tasks", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Save(ctx context.Context, accountID string, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	payload, err := json.Marshal(tasks)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "encode tasks", err)
	}
	if err := r.store.Set(tasksKey(accountID), string(payload)); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "save tasks", err)
	}
	return nil
}
