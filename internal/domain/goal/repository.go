package goal

import "context"

// Repository persists goals and assists per match. Replace writes both sets
// atomically so a re-save can never leave an assist pointing at a goal from a
// previous version of the match.
type Repository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]Goal, []Assist, error)
	ListBySeason(ctx context.Context, seasonID int64) ([]Goal, []Assist, error)
	ReplaceByMatch(ctx context.Context, matchID int64, goals []Goal, assists []Assist) error
}
