package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time-of-day and no location. All practice
// and match scheduling compares days through this type so that a row written
// in one timezone can never land on a neighbouring day when read in another.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const layout = "2006-01-02"

func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime truncates a timestamp to its calendar day in the timestamp's own
// location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current day in the local clock's location.
func Today(now func() time.Time) Date {
	if now == nil {
		now = time.Now
	}
	return FromTime(now())
}

func Parse(value string) (Date, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse calendar date %q: %w", value, err)
	}
	return FromTime(t), nil
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time anchors the date at UTC midnight. Used only at the persistence
// boundary; day arithmetic stays on Date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format(layout)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) AddDays(days int) Date {
	return FromTime(d.Time().AddDate(0, 0, days))
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// NextWeekday returns d itself when it already falls on the wanted weekday,
// otherwise the first later date that does.
func (d Date) NextWeekday(weekday time.Weekday) Date {
	offset := (int(weekday) - int(d.Weekday()) + 7) % 7
	return d.AddDays(offset)
}

func Compare(a, b Date) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	default:
		return 0
	}
}
