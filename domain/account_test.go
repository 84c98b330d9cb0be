package domain

import (
	"testing"
	"time"
)

func TestAccountPublicStripsCredentials(t *testing.T) {
	account := &Account{
		ID:           "id-1",
		Username:     "maria",
		PasswordHash: "$2a$12$fake",
		Email:        "maria@example.com",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	public := account.Public()
	if public.ID != account.ID || public.Username != account.Username || public.Email != account.Email {
		t.Errorf("projection lost fields: %+v", public)
	}
	if !public.CreatedAt.Equal(account.CreatedAt) {
		t.Errorf("CreatedAt = %v", public.CreatedAt)
	}
}

func TestSessionHelpers(t *testing.T) {
	var nilSession *Session
	if nilSession.IsAuthenticated() {
		t.Error("nil session reported as authenticated")
	}
	if nilSession.AccountID() != "" {
		t.Error("nil session has an account id")
	}

	session := &Session{Account: PublicAccount{ID: "id-1"}, Authenticated: true}
	if !session.IsAuthenticated() {
		t.Error("established session not authenticated")
	}
	if session.AccountID() != "id-1" {
		t.Errorf("AccountID = %q", session.AccountID())
	}

	stale := &Session{Account: PublicAccount{ID: "id-1"}}
	if stale.IsAuthenticated() || stale.AccountID() != "" {
		t.Error("unestablished session leaked an identity")
	}
}
