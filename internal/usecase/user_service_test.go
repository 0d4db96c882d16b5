package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/leaguepulse/leaguepulse/internal/domain/user"
	"github.com/leaguepulse/leaguepulse/internal/infrastructure/repository/memory"
	"github.com/leaguepulse/leaguepulse/internal/infrastructure/sessioncache"
	"github.com/leaguepulse/leaguepulse/internal/platform/token"
)

func newUserService() (*UserService, *sessioncache.MemoryStore) {
	sessions := sessioncache.NewMemory(time.Hour)
	tokens := token.NewManager("test-secret", time.Hour)
	service := NewUserService(
		memory.NewUserRepository(nil),
		sessions,
		tokens,
		&sequenceIDGenerator{prefix: "usr"},
	)
	return service, sessions
}

func TestUserService_SignUp(t *testing.T) {
	t.Run("creates user and opens session", func(t *testing.T) {
		service, sessions := newUserService()

		result, err := service.SignUp(t.Context(), SignUpInput{
			Name:     "Riski",
			Email:    "Riski@Example.Com",
			Password: "s3cret-pass",
		})
		if err != nil {
			t.Fatalf("signup failed: %v", err)
		}
		if result.Token == "" {
			t.Fatal("expected a signed token")
		}
		if result.User.Email != "riski@example.com" {
			t.Fatalf("expected lowercased email, got %s", result.User.Email)
		}
		if result.User.Role != user.RoleUser {
			t.Fatalf("expected default role user, got %s", result.User.Role)
		}
		if result.User.PasswordHash == "s3cret-pass" {
			t.Fatal("password stored in the clear")
		}

		cached, ok, err := sessions.Get(t.Context(), result.User.ID)
		if err != nil || !ok {
			t.Fatalf("expected cached session, ok=%v err=%v", ok, err)
		}
		if cached != result.Token {
			t.Fatal("cached token differs from issued token")
		}
	})

	t.Run("duplicate email conflicts regardless of case", func(t *testing.T) {
		service, _ := newUserService()

		input := SignUpInput{Name: "Riski", Email: "riski@example.com", Password: "s3cret-pass"}
		if _, err := service.SignUp(t.Context(), input); err != nil {
			t.Fatalf("first signup failed: %v", err)
		}

		input.Email = "RISKI@example.com"
		if _, err := service.SignUp(t.Context(), input); !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("accepts an explicit admin role", func(t *testing.T) {
		service, _ := newUserService()

		result, err := service.SignUp(t.Context(), SignUpInput{
			Name:     "Ops",
			Email:    "ops@example.com",
			Password: "s3cret-pass",
			Role:     user.RoleAdmin,
		})
		if err != nil {
			t.Fatalf("signup failed: %v", err)
		}
		if result.User.Role != user.RoleAdmin {
			t.Fatalf("expected admin role, got %s", result.User.Role)
		}
	})

	t.Run("rejects unknown roles and missing fields", func(t *testing.T) {
		service, _ := newUserService()

		cases := []SignUpInput{
			{Email: "a@example.com", Password: "pass", Role: "superuser"},
			{Email: "", Password: "pass"},
			{Email: "a@example.com", Password: ""},
		}
		for _, input := range cases {
			if _, err := service.SignUp(t.Context(), input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("input %+v: expected ErrInvalidInput, got %v", input, err)
			}
		}
	})
}

func TestUserService_LogIn(t *testing.T) {
	service, sessions := newUserService()

	signedUp, err := service.SignUp(t.Context(), SignUpInput{
		Name:     "Riski",
		Email:    "riski@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	t.Run("fresh login replaces the session", func(t *testing.T) {
		result, err := service.LogIn(t.Context(), LogInInput{
			Email:    "riski@example.com",
			Password: "s3cret-pass",
		})
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if result.User.ID != signedUp.User.ID {
			t.Fatalf("expected user %s, got %s", signedUp.User.ID, result.User.ID)
		}

		cached, ok, _ := sessions.Get(t.Context(), result.User.ID)
		if !ok || cached != result.Token {
			t.Fatal("session not replaced with latest token")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.LogIn(t.Context(), LogInInput{
			Email:    "nobody@example.com",
			Password: "s3cret-pass",
		})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.LogIn(t.Context(), LogInInput{
			Email:    "riski@example.com",
			Password: "wrong-pass",
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestUserService_LogOut(t *testing.T) {
	service, sessions := newUserService()

	result, err := service.SignUp(t.Context(), SignUpInput{
		Name:     "Riski",
		Email:    "riski@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if err := service.LogOut(t.Context(), result.User.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok, _ := sessions.Get(t.Context(), result.User.ID); ok {
		t.Fatal("session survived logout")
	}

	// Logging out an already logged-out user is a no-op.
	if err := service.LogOut(t.Context(), result.User.ID); err != nil {
		t.Fatalf("second logout failed: %v", err)
	}
}
