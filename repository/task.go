package repository

import (
	"context"

	"github.com/undoapp/tracker/domain"
)

// TaskRepository persists one ordered task collection per account. Writes
// always replace the full collection; there are no per-item operations at
// this layer.
type TaskRepository interface {
	// Load returns the account's tasks in insertion order. A missing
	// collection loads as empty, not as an error.
	Load(ctx context.Context, accountID string) ([]domain.Task, error)
	Save(ctx context.Context, accountID string, tasks []domain.Task) error
}
