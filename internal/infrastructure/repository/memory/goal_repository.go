package memory

import (
	"context"
	"sync"

	"github.com/immxrko/fc-patron-sub000/internal/domain/goal"
)

type GoalRepository struct {
	mu             sync.RWMutex
	nextID         int64
	goalsByMatch   map[int64][]goal.Goal
	assistsByMatch map[int64][]goal.Assist
	matches        *MatchRepository
}

func NewGoalRepository(matches *MatchRepository) *GoalRepository {
	return &GoalRepository{
		nextID:         1,
		goalsByMatch:   make(map[int64][]goal.Goal),
		assistsByMatch: make(map[int64][]goal.Assist),
		matches:        matches,
	}
}

func (r *GoalRepository) ListByMatch(_ context.Context, matchID int64) ([]goal.Goal, []goal.Assist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := append([]goal.Goal(nil), r.goalsByMatch[matchID]...)
	assists := append([]goal.Assist(nil), r.assistsByMatch[matchID]...)
	return goals, assists, nil
}

func (r *GoalRepository) ListBySeason(_ context.Context, seasonID int64) ([]goal.Goal, []goal.Assist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := make([]goal.Goal, 0)
	assists := make([]goal.Assist, 0)
	for matchID, items := range r.goalsByMatch {
		if sid, ok := r.matches.SeasonOf(matchID); ok && sid == seasonID {
			goals = append(goals, items...)
		}
	}
	for matchID, items := range r.assistsByMatch {
		if sid, ok := r.matches.SeasonOf(matchID); ok && sid == seasonID {
			assists = append(assists, items...)
		}
	}
	return goals, assists, nil
}

func (r *GoalRepository) ReplaceByMatch(_ context.Context, matchID int64, goals []goal.Goal, assists []goal.Assist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	storedGoals := make([]goal.Goal, 0, len(goals))
	for _, g := range goals {
		g.ID = r.nextID
		r.nextID++
		g.MatchID = matchID
		storedGoals = append(storedGoals, g)
	}
	storedAssists := make([]goal.Assist, 0, len(assists))
	for _, a := range assists {
		a.ID = r.nextID
		r.nextID++
		a.MatchID = matchID
		storedAssists = append(storedAssists, a)
	}
	r.goalsByMatch[matchID] = storedGoals
	r.assistsByMatch[matchID] = storedAssists
	return nil
}
