// Package auth verifies bearer tokens against both the signature and the
// session cache, so a logout or a newer login invalidates older tokens
// before they expire.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/leaguepulse/leaguepulse/internal/domain/session"
	"github.com/leaguepulse/leaguepulse/internal/domain/user"
	"github.com/leaguepulse/leaguepulse/internal/platform/token"
)

var ErrSessionRevoked = errors.New("session revoked")

type SessionVerifier struct {
	tokens   *token.Manager
	sessions session.Store
}

func NewSessionVerifier(tokens *token.Manager, sessions session.Store) *SessionVerifier {
	return &SessionVerifier{
		tokens:   tokens,
		sessions: sessions,
	}
}

// Verify returns the principal behind raw if the token is validly signed,
// unexpired, and still the user's current session.
func (v *SessionVerifier) Verify(ctx context.Context, raw string) (user.Principal, error) {
	claims, err := v.tokens.Parse(raw)
	if err != nil {
		return user.Principal{}, err
	}

	current, ok, err := v.sessions.Get(ctx, claims.UserID)
	if err != nil {
		return user.Principal{}, fmt.Errorf("load session: %w", err)
	}
	if !ok || current != raw {
		return user.Principal{}, ErrSessionRevoked
	}

	return user.Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
