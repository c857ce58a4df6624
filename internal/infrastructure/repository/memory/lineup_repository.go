package memory

import (
	"context"
	"sync"

	"github.com/immxrko/fc-patron-sub000/internal/domain/lineup"
)

type LineupRepository struct {
	mu      sync.RWMutex
	byMatch map[int64][]lineup.Entry
	matches *MatchRepository
}

func NewLineupRepository(matches *MatchRepository) *LineupRepository {
	return &LineupRepository{
		byMatch: make(map[int64][]lineup.Entry),
		matches: matches,
	}
}

func (r *LineupRepository) ListByMatch(_ context.Context, matchID int64) ([]lineup.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]lineup.Entry(nil), r.byMatch[matchID]...), nil
}

func (r *LineupRepository) ListBySeason(_ context.Context, seasonID int64) ([]lineup.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Entry, 0)
	for matchID, entries := range r.byMatch {
		if sid, ok := r.matches.SeasonOf(matchID); ok && sid == seasonID {
			out = append(out, entries...)
		}
	}
	return out, nil
}

func (r *LineupRepository) ReplaceByMatch(_ context.Context, matchID int64, entries []lineup.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byMatch[matchID] = append([]lineup.Entry(nil), entries...)
	return nil
}
