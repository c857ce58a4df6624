// Package player holds the club roster.
package player

// Positions as persisted. The admin UI orders lineup slots by these.
const (
	PositionGoalkeeper = "TW"
	PositionDefender   = "ABW"
	PositionMidfielder = "MIT"
	PositionForward    = "ST"
)

// Player is one roster member. Squad uses the same codes as matches; a player
// may appear in either squad's lineup regardless, the field only drives
// default grouping in the admin UI.
type Player struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Position string `db:"position" json:"position"`
	Squad    string `db:"squad" json:"squad"`
	Active   bool   `db:"active" json:"active"`
}

// IsValidPosition reports whether p is a persistable position code.
func IsValidPosition(p string) bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}
