package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/leaguepulse/leaguepulse/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[string]team.Team
	byName map[string]string
	orders []string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make(map[string]team.Team, len(teams))
	byName := make(map[string]string, len(teams))
	orders := make([]string, 0, len(teams))

	for _, t := range teams {
		items[t.ID] = t
		byName[team.NormalizeName(t.Name)] = t.ID
		orders = append(orders, t.ID)
	}

	return &TeamRepository{
		items:  items,
		byName: byName,
		orders: orders,
	}
}

func (r *TeamRepository) Insert(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	r.byName[team.NormalizeName(item.Name)] = item.ID
	r.orders = append(r.orders, item.ID)
	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	return t, ok, nil
}

func (r *TeamRepository) FindByName(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[team.NormalizeName(name)]
	if !ok {
		return team.Team{}, false, nil
	}
	return r.items[id], true, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.items[item.ID]; ok {
		delete(r.byName, team.NormalizeName(prev.Name))
	}
	r.items[item.ID] = item
	r.byName[team.NormalizeName(item.Name)] = item.ID
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[id]
	if !ok {
		return false, nil
	}
	delete(r.items, id)
	delete(r.byName, team.NormalizeName(prev.Name))
	for i, existing := range r.orders {
		if existing == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *TeamRepository) Search(_ context.Context, term string, skip, limit int) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term = strings.ToLower(term)
	matched := make([]team.Team, 0, len(r.orders))
	for _, id := range r.orders {
		t := r.items[id]
		if term == "" || teamMatches(t, term) {
			matched = append(matched, t)
		}
	}

	return paginate(matched, skip, limit), nil
}

func teamMatches(t team.Team, lowered string) bool {
	return strings.Contains(strings.ToLower(t.Name), lowered) ||
		strings.Contains(strings.ToLower(t.Stadium), lowered) ||
		strings.Contains(strings.ToLower(t.Manager), lowered)
}

func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
