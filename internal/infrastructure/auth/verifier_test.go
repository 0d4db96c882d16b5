package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/leaguepulse/leaguepulse/internal/infrastructure/sessioncache"
	"github.com/leaguepulse/leaguepulse/internal/platform/token"
)

func TestSessionVerifier(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	sessions := sessioncache.NewMemory(time.Hour)
	verifier := NewSessionVerifier(tokens, sessions)

	claims := token.Claims{UserID: "usr-001", Email: "riski@example.com", Role: "admin"}
	signed, err := tokens.Issue(claims)
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	t.Run("rejects a token with no session", func(t *testing.T) {
		if _, err := verifier.Verify(t.Context(), signed); !errors.Is(err, ErrSessionRevoked) {
			t.Fatalf("expected ErrSessionRevoked, got %v", err)
		}
	})

	if err := sessions.Set(t.Context(), claims.UserID, signed); err != nil {
		t.Fatalf("set session failed: %v", err)
	}

	t.Run("accepts the current session token", func(t *testing.T) {
		principal, err := verifier.Verify(t.Context(), signed)
		if err != nil {
			t.Fatalf("verify failed: %v", err)
		}
		if principal.UserID != claims.UserID || principal.Role != claims.Role {
			t.Fatalf("unexpected principal: %+v", principal)
		}
	})

	t.Run("rejects a superseded token", func(t *testing.T) {
		if err := sessions.Set(t.Context(), claims.UserID, "another-token"); err != nil {
			t.Fatalf("set session failed: %v", err)
		}
		if _, err := verifier.Verify(t.Context(), signed); !errors.Is(err, ErrSessionRevoked) {
			t.Fatalf("expected ErrSessionRevoked, got %v", err)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := verifier.Verify(t.Context(), "not-a-token"); !errors.Is(err, token.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
