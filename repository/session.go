package repository

import (
	"context"

	"github.com/undoapp/tracker/domain"
)

// SessionRepository persists the single session snapshot used to restore
// authentication across restarts.
type SessionRepository interface {
	// Get returns domain.ErrSessionNotFound when no snapshot exists.
	Get(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context) error
}
