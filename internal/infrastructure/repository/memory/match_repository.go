// Package memory holds in-process repository implementations used by tests
// and by local runs without a database.
package memory

import (
	"context"
	"sync"

	"github.com/immxrko/fc-patron-sub000/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[int64]match.Match, len(matches))
	var nextID int64 = 1
	for _, m := range matches {
		items[m.ID] = m
		if m.ID >= nextID {
			nextID = m.ID + 1
		}
	}
	return &MatchRepository{nextID: nextID, items: items}
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	return m, ok, nil
}

func (r *MatchRepository) ListBySeason(_ context.Context, seasonID int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.items {
		if m.SeasonID == seasonID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	r.items[m.ID] = m
	return m.ID, nil
}

func (r *MatchRepository) UpdateResult(_ context.Context, id int64, result *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok {
		return nil
	}
	m.Result = result
	r.items[id] = m
	return nil
}

// SeasonOf resolves a match's season, standing in for the SQL join the
// per-season event queries use.
func (r *MatchRepository) SeasonOf(matchID int64) (int64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	return m.SeasonID, ok
}
