package kv

import (
	"context"
	"encoding/json"

	"github.com/undoapp/tracker/domain"
	"github.com/undoapp/tracker/internal/infrastructure/storage"
)

// SessionRepository stores the session snapshot under a fixed key. Only the
// public account projection is persisted, never credentials.
type SessionRepository struct {
	store storage.Store
}

func NewSessionRepository(store storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	raw, found, err := r.store.Get(sessionKey)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "load session", err)
	}
	if !found {
		return nil, domain.ErrSessionNotFound
	}
	var account domain.PublicAccount
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "decode session", err)
	}
	return &domain.Session{Account: account, Authenticated: true}, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *domain.Session) error {
	if !session.IsAuthenticated() {
		return domain.ErrSessionNotFound
	}
	payload, err := json.Marshal(session.Account)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "encode session", err)
	}
	if err := r.store.Set(sessionKey, string(payload)); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "save session", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context) error {
	if err := r.store.Remove(sessionKey); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "remove session", err)
	}
	return nil
}
