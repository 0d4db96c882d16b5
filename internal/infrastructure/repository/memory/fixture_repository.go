package memory

import (
	"context"
	"sync"
	"time"

	"github.com/leaguepulse/leaguepulse/internal/domain/fixture"
)

type FixtureRepository struct {
	mu     sync.RWMutex
	items  map[string]fixture.Fixture
	orders []string
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	items := make(map[string]fixture.Fixture, len(fixtures))
	orders := make([]string, 0, len(fixtures))

	for _, f := range fixtures {
		items[f.ID] = f
		orders = append(orders, f.ID)
	}

	return &FixtureRepository{
		items:  items,
		orders: orders,
	}
}

func (r *FixtureRepository) Insert(_ context.Context, item fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)
	return nil
}

func (r *FixtureRepository) GetByID(_ context.Context, id string) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.items[id]
	return f, ok, nil
}

func (r *FixtureRepository) Update(_ context.Context, item fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *FixtureRepository) UpdateStatus(_ context.Context, id string, status fixture.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.items[id]
	if !ok {
		return nil
	}
	f.Status = status
	r.items[id] = f
	return nil
}

func (r *FixtureRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	for i, existing := range r.orders {
		if existing == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *FixtureRepository) List(_ context.Context) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *FixtureRepository) ListInvolving(_ context.Context, teamIDs []string, from, to time.Time) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0)
	for _, id := range r.orders {
		f := r.items[id]
		if f.Date.Before(from) || f.Date.After(to) {
			continue
		}
		for _, teamID := range teamIDs {
			if f.Involves(teamID) {
				out = append(out, f)
				break
			}
		}
	}
	return out, nil
}

func (r *FixtureRepository) Search(_ context.Context, filter fixture.SearchFilter) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]fixture.Fixture, 0, len(r.orders))
	for _, id := range r.orders {
		f := r.items[id]
		if !filter.From.IsZero() && f.Date.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && f.Date.After(filter.To) {
			continue
		}
		if filter.Status != "" && f.Status != filter.Status {
			continue
		}
		if filter.TeamIDs != nil && !involvesAny(f, filter.TeamIDs) {
			continue
		}
		matched = append(matched, f)
	}

	return paginate(matched, filter.Skip, filter.Limit), nil
}

func involvesAny(f fixture.Fixture, teamIDs []string) bool {
	for _, teamID := range teamIDs {
		if f.Involves(teamID) {
			return true
		}
	}
	return false
}
