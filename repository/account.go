package repository

import (
	"context"

	"github.com/undoapp/tracker/domain"
)

type AccountRepository interface {
	// GetByUsername returns domain.ErrAccountNotFound when the username is
	// absent. Lookup is a case-sensitive exact match.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	// Create persists a new account and fails with domain.ErrUsernameTaken
	// when the username is already registered.
	Create(ctx context.Context, account *domain.Account) error
}
