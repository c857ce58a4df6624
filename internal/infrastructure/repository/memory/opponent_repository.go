package memory

import (
	"context"
	"sync"

	"github.com/immxrko/fc-patron-sub000/internal/domain/opponent"
)

type OpponentRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]opponent.Opponent
}

func NewOpponentRepository(opponents []opponent.Opponent) *OpponentRepository {
	items := make(map[int64]opponent.Opponent, len(opponents))
	var nextID int64 = 1
	for _, o := range opponents {
		items[o.ID] = o
		if o.ID >= nextID {
			nextID = o.ID + 1
		}
	}
	return &OpponentRepository{nextID: nextID, items: items}
}

func (r *OpponentRepository) List(_ context.Context) ([]opponent.Opponent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]opponent.Opponent, 0, len(r.items))
	for _, o := range r.items {
		out = append(out, o)
	}
	return out, nil
}

func (r *OpponentRepository) GetByID(_ context.Context, id int64) (opponent.Opponent, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.items[id]
	return o, ok, nil
}

func (r *OpponentRepository) Create(_ context.Context, o opponent.Opponent) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	r.items[o.ID] = o
	return o.ID, nil
}
