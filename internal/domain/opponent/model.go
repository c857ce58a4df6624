// Package opponent models the clubs the fixtures are played against.
package opponent

import "context"

// Opponent is one opposing club.
type Opponent struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	LogoURL string `db:"logo_url" json:"logoUrl,omitempty"`
}

// Repository persists opponents.
type Repository interface {
	List(ctx context.Context) ([]Opponent, error)
	GetByID(ctx context.Context, id int64) (Opponent, bool, error)
	Create(ctx context.Context, o Opponent) (int64, error)
}
