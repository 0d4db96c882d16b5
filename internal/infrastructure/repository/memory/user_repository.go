package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/leaguepulse/leaguepulse/internal/domain/user"
)

type UserRepository struct {
	mu      sync.RWMutex
	items   map[string]user.User
	byEmail map[string]string
}

func NewUserRepository(users []user.User) *UserRepository {
	items := make(map[string]user.User, len(users))
	byEmail := make(map[string]string, len(users))

	for _, u := range users {
		items[u.ID] = u
		byEmail[strings.ToLower(u.Email)] = u.ID
	}

	return &UserRepository{
		items:   items,
		byEmail: byEmail,
	}
}

func (r *UserRepository) Insert(_ context.Context, item user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	r.byEmail[strings.ToLower(item.Email)] = item.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	return u, ok, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return user.User{}, false, nil
	}
	return r.items[id], true, nil
}
