// Package card holds bookings received by club players and the rule that
// escalates a player's second caution in one match.
package card

// Kind is the card color the admin picks on the form. Second yellow is not
// user-selectable; it only arises through classification.
type Kind string

const (
	KindYellow Kind = "YELLOW"
	KindRed    Kind = "RED"
)

// IsValidKind reports whether k is a pickable card color.
func IsValidKind(k Kind) bool {
	return k == KindYellow || k == KindRed
}

// Classification is the stored card type.
type Classification string

const (
	ClassYellow       Classification = "YELLOW"
	ClassSecondYellow Classification = "SECOND_YELLOW"
	ClassRed          Classification = "RED"
)

// Record is one booking row for a match. A second yellow ends participation
// like a red but stays a distinct type; the two flags are never both true.
type Record struct {
	ID             int64 `db:"id" json:"id"`
	MatchID        int64 `db:"match_id" json:"matchId"`
	PlayerID       int64 `db:"player_id" json:"playerId"`
	IsRed          bool  `db:"is_red" json:"isRed"`
	IsSecondYellow bool  `db:"is_second_yellow" json:"isSecondYellow"`
	Minute         *int  `db:"minute" json:"minute,omitempty"`
}

// Classification derives the stored type from the flags.
func (r Record) Classification() Classification {
	switch {
	case r.IsRed:
		return ClassRed
	case r.IsSecondYellow:
		return ClassSecondYellow
	default:
		return ClassYellow
	}
}

// Assignment is one booking as submitted by the admin form, before
// classification. Kind carries the color the admin picked; the stored type
// may escalate when the player already holds a yellow.
type Assignment struct {
	PlayerID int64
	Kind     Kind
	Minute   *int
}
