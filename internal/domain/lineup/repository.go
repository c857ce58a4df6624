package lineup

import "context"

// Repository exposes lineup persistence operations. A save replaces the whole
// roster for one match.
type Repository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]Entry, error)
	ListBySeason(ctx context.Context, seasonID int64) ([]Entry, error)
	ReplaceByMatch(ctx context.Context, matchID int64, entries []Entry) error
}
