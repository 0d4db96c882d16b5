package token

import (
	"errors"
	"testing"
	"time"
)

func TestManager_IssueAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	raw, err := manager.Issue(Claims{UserID: "user-1", Email: "a@b.test", Role: "admin"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	claims, err := manager.Parse(raw)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@b.test" || claims.Role != "admin" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	raw, err := issuer.Issue(Claims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := verifier.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_RejectsExpired(t *testing.T) {
	manager := NewManager("test-secret", time.Minute)

	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return issuedAt }

	raw, err := manager.Issue(Claims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	manager.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	if _, err := manager.Parse(raw); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestManager_RequiresUserID(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	if _, err := manager.Issue(Claims{}); err == nil {
		t.Fatalf("expected error for empty user id")
	}
}
