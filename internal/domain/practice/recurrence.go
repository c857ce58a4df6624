package practice

import (
	"time"

	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
)

// MissingDates returns every date on the given weekday between the earliest
// existing session and today (inclusive) that has no session yet, in
// ascending order. With no existing sessions there is no anchor, so nothing
// is generated; the first session has to be created by hand.
func MissingDates(existing []calendar.Date, today calendar.Date, weekday time.Weekday) []calendar.Date {
	if len(existing) == 0 {
		return nil
	}

	have := make(map[calendar.Date]struct{}, len(existing))
	earliest := existing[0]
	for _, d := range existing {
		have[d] = struct{}{}
		if d.Before(earliest) {
			earliest = d
		}
	}

	missing := make([]calendar.Date, 0)
	for d := earliest.NextWeekday(weekday); !d.After(today); d = d.AddDays(7) {
		if _, ok := have[d]; !ok {
			missing = append(missing, d)
		}
	}
	return missing
}
