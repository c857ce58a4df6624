package memory

import (
	"context"
	"sync"

	"github.com/immxrko/fc-patron-sub000/internal/domain/card"
)

type CardRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byMatch map[int64][]card.Record
	matches *MatchRepository
}

func NewCardRepository(matches *MatchRepository) *CardRepository {
	return &CardRepository{
		nextID:  1,
		byMatch: make(map[int64][]card.Record),
		matches: matches,
	}
}

func (r *CardRepository) ListByMatch(_ context.Context, matchID int64) ([]card.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]card.Record(nil), r.byMatch[matchID]...), nil
}

func (r *CardRepository) ListBySeason(_ context.Context, seasonID int64) ([]card.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]card.Record, 0)
	for matchID, records := range r.byMatch {
		if sid, ok := r.matches.SeasonOf(matchID); ok && sid == seasonID {
			out = append(out, records...)
		}
	}
	return out, nil
}

func (r *CardRepository) ReplaceByMatch(_ context.Context, matchID int64, records []card.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]card.Record, 0, len(records))
	for _, rec := range records {
		rec.ID = r.nextID
		r.nextID++
		rec.MatchID = matchID
		stored = append(stored, rec)
	}
	r.byMatch[matchID] = stored
	return nil
}
