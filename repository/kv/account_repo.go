package kv

import (
	"context"
	"encoding/json"

	"github.com/undoapp/tracker/domain"
	"github.com/undoapp/tracker/internal/infrastructure/storage"
)

// AccountRepository stores the whole account collection as one JSON object
// keyed by username. Uniqueness is enforced here, on the persisted map.
type AccountRepository struct {
	store storage.Store
}

func NewAccountRepository(store storage.Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	accounts, err := r.load()
	if err != nil {
		return nil, err
	}
	account, ok := accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	accounts, err := r.load()
	if err != nil {
		return err
	}
	if _, exists := accounts[account.Username]; exists {
		return domain.ErrUsernameTaken
	}
	accounts[account.Username] = *account
	return r.save(accounts)
}

func (r *AccountRepository) load() (map[string]domain.Account, error) {
	raw, found, err := r.store.Get(accountsKey)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "load accounts", err)
	}
	accounts := make(map[string]domain.Account)
	if !found {
		return accounts, nil
	}
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "decode accounts", err)
	}
	return accounts, nil
}

func (r *AccountRepository) save(accounts map[string]domain.Account) error {
	payload, err := json.Marshal(accounts)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "encode accounts", err)
	}
	if err := r.store.Set(accountsKey, string(payload)); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "save accounts", err)
	}
	return nil
}
