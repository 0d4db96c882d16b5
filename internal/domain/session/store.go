// Package session defines the cache-backed session contract: one current
// token per user id, expiring after a fixed TTL.
package session

import "context"

// Store maps a user id to that user's current valid bearer token.
// Implementations own the expiry; a Set overwrites any previous session.
type Store interface {
	Set(ctx context.Context, userID, token string) error
	Get(ctx context.Context, userID string) (string, bool, error)
	Delete(ctx context.Context, userID string) error
}
