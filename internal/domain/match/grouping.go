package match

import (
	"sort"

	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
)

// DayGroup bundles the fixtures of one calendar day for display.
type DayGroup struct {
	Date    calendar.Date
	Matches []Match
}

// GroupByDay groups fixtures by calendar date, ordered by date ascending.
// Within a day the first-team fixture sorts before the reserve fixture so a
// shared matchday always lists KM on top.
func GroupByDay(matches []Match) []DayGroup {
	byDay := make(map[calendar.Date][]Match, len(matches))
	for _, m := range matches {
		byDay[m.Date] = append(byDay[m.Date], m)
	}

	groups := make([]DayGroup, 0, len(byDay))
	for date, dayMatches := range byDay {
		sort.SliceStable(dayMatches, func(i, j int) bool {
			return squadRank(dayMatches[i].Squad) < squadRank(dayMatches[j].Squad)
		})
		groups = append(groups, DayGroup{Date: date, Matches: dayMatches})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})

	return groups
}

func squadRank(squad string) int {
	if squad == SquadFirstTeam {
		return 0
	}
	return 1
}
