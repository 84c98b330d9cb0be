package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/undoapp/tracker/domain"
	"github.com/undoapp/tracker/repository"
)

// UseCase is the credential store: it registers accounts, authenticates
// login attempts and tracks the current session. There are two states,
// unauthenticated and authenticated; Signup, Login and Restore enter the
// second, Logout leaves it. Re-authenticating without logging out first is
// not a transition this store has.
type UseCase struct {
	accounts repository.AccountRepository
	sessions repository.SessionRepository
	hasher   *PasswordHasher
	logger   *zap.Logger
	current  *domain.Session
}

func New(accounts repository.AccountRepository, sessions repository.SessionRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		accounts: accounts,
		sessions: sessions,
		hasher:   NewPasswordHasher(),
		logger:   logger,
	}
}

// Current returns the in-memory session, nil when unauthenticated.
func (uc *UseCase) Current() *domain.Session {
	return uc.current
}

// Signup registers a new account and establishes a session for it. The
// password is hashed before the account is persisted.
func (uc *UseCase) Signup(ctx context.Context, username, password, email string) (*domain.Session, error) {
	if uc.current.IsAuthenticated() {
		return nil, domain.ErrSessionActive
	}
	if username == "" || password == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "username and password are required")
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "hash password", err)
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		CreatedAt:    time.Now(),
	}
	if err := uc.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	uc.logger.Info("account created", zap.String("username", username))
	return uc.establish(ctx, account)
}

// Login authenticates an existing account. Unknown usernames and wrong
// passwords fail the same way; the account collection is never mutated.
func (uc *UseCase) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if uc.current.IsAuthenticated() {
		return nil, domain.ErrSessionActive
	}

	account, err := uc.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !uc.hasher.Verify(password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return uc.establish(ctx, account)
}

// Logout clears the session unconditionally. A failure to remove the
// persisted snapshot is logged, not surfaced.
func (uc *UseCase) Logout(ctx context.Context) {
	uc.current = nil
	if err := uc.sessions.Delete(ctx); err != nil {
		uc.logger.Warn("failed to clear session snapshot", zap.Error(err))
	}
}

// Restore reconstructs a session from the persisted snapshot without
// re-validating credentials. (nil, nil) means no snapshot exists.
func (uc *UseCase) Restore(ctx context.Context) (*domain.Session, error) {
	session, err := uc.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	uc.current = session
	uc.logger.Info("session restored", zap.String("username", session.Account.Username))
	return session, nil
}

func (uc *UseCase) establish(ctx context.Context, account *domain.Account) (*domain.Session, error) {
	session := &domain.Session{Account: account.Public(), Authenticated: true}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	uc.current = session
	return session, nil
}
