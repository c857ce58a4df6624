package player

import "context"

// Repository persists the roster.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	Create(ctx context.Context, p Player) (int64, error)
	Update(ctx context.Context, p Player) error
}
