package match

import (
	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
)

// Squad discriminates the two fixtures the club can play on one weekend.
const (
	SquadFirstTeam = "KM"
	SquadReserve   = "RES"
)

func IsValidSquad(value string) bool {
	return value == SquadFirstTeam || value == SquadReserve
}

// Match is one fixture. Result stays nil until the match has been played and
// is always club-centric ("club goals : opponent goals") once set, regardless
// of venue.
type Match struct {
	ID         int64
	SeasonID   int64
	OpponentID int64
	Date       calendar.Date
	Kickoff    string // "HH:MM", local pitch time
	IsHome     bool
	Squad      string // SquadFirstTeam or SquadReserve
	Result     *string
}

type Status string

const (
	StatusPlayed        Status = "PLAYED"
	StatusUpcoming      Status = "UPCOMING"
	StatusMissingResult Status = "MISSING_RESULT"
)

// ClassifyStatus decides how a fixture shows up in the listing. A fixture
// without a result dated today or later is upcoming; without a result and in
// the past it is flagged as missing a result but still listed with the played
// fixtures.
func ClassifyStatus(m Match, today calendar.Date) Status {
	if m.Result != nil {
		return StatusPlayed
	}
	if m.Date.Before(today) {
		return StatusMissingResult
	}
	return StatusUpcoming
}
