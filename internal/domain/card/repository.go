package card

import "context"

// Repository persists bookings per match.
type Repository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]Record, error)
	ListBySeason(ctx context.Context, seasonID int64) ([]Record, error)
	ReplaceByMatch(ctx context.Context, matchID int64, records []Record) error
}
