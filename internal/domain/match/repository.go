package match

import "context"

// Repository exposes fixture persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	ListBySeason(ctx context.Context, seasonID int64) ([]Match, error)
	Create(ctx context.Context, m Match) (int64, error)
	UpdateResult(ctx context.Context, id int64, result *string) error
}
