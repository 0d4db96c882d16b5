// Package sessioncache provides the session.Store drivers: a process-local
// store for dev and tests, and a Redis store for real deployments.
package sessioncache

import (
	"context"
	"time"

	"github.com/leaguepulse/leaguepulse/internal/platform/cache"
)

type MemoryStore struct {
	store *cache.Store
}

func NewMemory(ttl time.Duration) *MemoryStore {
	return &MemoryStore{store: cache.NewStore(ttl)}
}

func (s *MemoryStore) Set(ctx context.Context, userID, token string) error {
	s.store.Set(ctx, userID, token)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, userID string) (string, bool, error) {
	value, ok := s.store.Get(ctx, userID)
	if !ok {
		return "", false, nil
	}
	token, ok := value.(string)
	return token, ok, nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID string) error {
	s.store.Delete(ctx, userID)
	return nil
}
