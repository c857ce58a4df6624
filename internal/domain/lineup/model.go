package lineup

import (
	"strconv"
	"strings"
)

// Entry is one (match, player) roster row. A substituted-out player carries
// the minute in SubOut; the replacement carries the same minute in SubIn on
// their own row. Pairing the two sides reconstructs the substitution event.
type Entry struct {
	MatchID   int64
	PlayerID  int64
	IsStarter bool
	SubIn     *int
	SubOut    *int
}

// Substitution is one reconstructed "out is replaced by in at minute" event.
type Substitution struct {
	PlayerOut int64
	PlayerIn  int64
	Minute    int
}

// ParseMinute parses a minute field as it arrives from the admin form. An
/// empty or unparsable value yields nil: the row simply does not contribute to
// any minute bucket, no error is raised.
func ParseMinute(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	minute, err := strconv.Atoi(raw)
	if err != nil || minute < 0 {
		return nil
	}
	return &minute
}
