package auth

import (
	"context"
	"testing"

	"github.com/undoapp/tracker/domain"
	"github.com/undoapp/tracker/internal/infrastructure/storage"
	"github.com/undoapp/tracker/repository/kv"
)

func newTestUseCase() (*UseCase, *storage.MemoryStore) {
	store := storage.NewMemory()
	return New(kv.NewAccountRepository(store), kv.NewSessionRepository(store), nil), store
}

func TestSignupThenLogin(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	session, err := uc.Signup(ctx, "maria", "s3cret", "maria@example.com")
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if !session.IsAuthenticated() {
		t.Fatal("signup did not establish a session")
	}
	if session.Account.Username != "maria" {
		t.Errorf("session username = %q", session.Account.Username)
	}
	if uc.Current() == nil {
		t.Fatal("Current() nil after signup")
	}

	uc.Logout(ctx)
	if uc.Current() != nil {
		t.Fatal("Current() not cleared by logout")
	}

	session, err = uc.Login(ctx, "maria", "s3cret")
	if err != nil {
		t.Fatalf("Login after signup failed: %v", err)
	}
	if session.Account.Username != "maria" {
		t.Errorf("login session username = %q", session.Account.Username)
	}
}

func TestSignupValidation(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "pw"},
		{name: "empty password", username: "user", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Signup(ctx, tt.username, tt.password, ""); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
				t.Errorf("Signup error = %v, want INVALID", err)
			}
		})
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	if _, err := uc.Signup(ctx, "taken", "original", ""); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	uc.Logout(ctx)

	if _, err := uc.Signup(ctx, "taken", "other", ""); err != domain.ErrUsernameTaken {
		t.Fatalf("duplicate Signup error = %v, want ErrUsernameTaken", err)
	}

	// The original record must be untouched: its password still works.
	if _, err := uc.Login(ctx, "taken", "original"); err != nil {
		t.Errorf("original account altered by failed signup: %v", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	if _, err := uc.Signup(ctx, "maria", "s3cret", ""); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	uc.Logout(ctx)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown username", username: "nobody", password: "s3cret"},
		{name: "wrong password", username: "maria", password: "guess"},
		{name: "case sensitive username", username: "Maria", password: "s3cret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Login(ctx, tt.username, tt.password); err != domain.ErrInvalidCredentials {
				t.Errorf("Login error = %v, want ErrInvalidCredentials", err)
			}
			if uc.Current() != nil {
				t.Error("failed login established a session")
			}
		})
	}
}

func TestNoReauthenticationWhileActive(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	if _, err := uc.Signup(ctx, "maria", "s3cret", ""); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	if _, err := uc.Login(ctx, "maria", "s3cret"); err != domain.ErrSessionActive {
		t.Errorf("Login while active error = %v, want ErrSessionActive", err)
	}
	if _, err := uc.Signup(ctx, "other", "pw", ""); err != domain.ErrSessionActive {
		t.Errorf("Signup while active error = %v, want ErrSessionActive", err)
	}
}

func TestPasswordsNeverStoredInPlaintext(t *testing.T) {
	store := storage.NewMemory()
	uc := New(kv.NewAccountRepository(store), kv.NewSessionRepository(store), nil)
	ctx := context.Background()

	if _, err := uc.Signup(ctx, "maria", "hunter2", ""); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	account, err := kv.NewAccountRepository(store).GetByUsername(ctx, "maria")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if account.PasswordHash == "hunter2" {
		t.Error("password persisted in plaintext")
	}
}

func TestRestore(t *testing.T) {
	store := storage.NewMemory()
	uc := New(kv.NewAccountRepository(store), kv.NewSessionRepository(store), nil)
	ctx := context.Background()

	if _, err := uc.Signup(ctx, "maria", "s3cret", ""); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	// A new use case over the same store stands in for a process restart.
	restarted := New(kv.NewAccountRepository(store), kv.NewSessionRepository(store), nil)
	session, err := restarted.Restore(ctx)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if !session.IsAuthenticated() || session.Account.Username != "maria" {
		t.Errorf("restored session = %+v", session)
	}
	if restarted.Current() == nil {
		t.Error("Restore did not set the current session")
	}
}

func TestRestoreWithoutSnapshot(t *testing.T) {
	uc, _ := newTestUseCase()

	session, err := uc.Restore(context.Background())
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if session != nil {
		t.Errorf("Restore with no snapshot = %+v, want nil", session)
	}
	if uc.Current() != nil {
		t.Error("Restore with no snapshot established a session")
	}
}

func TestLogoutClearsSnapshot(t *testing.T) {
	store := storage.NewMemory()
	uc := New(kv.NewAccountRepository(store), kv.NewSessionRepository(store), nil)
	ctx := context.Background()

	if _, err := uc.Signup(ctx, "maria", "s3cret", ""); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	uc.Logout(ctx)

	restarted := New(kv.NewAccountRepository(store), kv.NewSessionRepository(store), nil)
	if session, err := restarted.Restore(ctx); err != nil || session != nil {
		t.Errorf("Restore after logout = (%+v, %v), want (nil, nil)", session, err)
	}
}
