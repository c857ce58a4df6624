// Package season models the club's playing seasons.
package season

import "context"

// Season is one playing year, e.g. "2024/25". Current marks the season new
// matches default into; at most one season carries it.
type Season struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Current bool   `db:"current" json:"current"`
}

// Repository persists seasons.
type Repository interface {
	List(ctx context.Context) ([]Season, error)
	GetByID(ctx context.Context, id int64) (Season, bool, error)
	GetCurrent(ctx context.Context) (Season, bool, error)
}
