package practice

import (
	"testing"
	"time"

	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
)

func date(y int, m time.Month, d int) calendar.Date {
	return calendar.New(y, m, d)
}

func TestMissingDates_BackfillsEveryTuesday(t *testing.T) {
	// 2024-01-02 is a Tuesday. With only that session on file and today
	// being 2024-01-23, the three following Tuesdays are missing.
	existing := []calendar.Date{date(2024, time.January, 2)}
	today := date(2024, time.January, 23)

	got := MissingDates(existing, today, time.Tuesday)
	want := []calendar.Date{
		date(2024, time.January, 9),
		date(2024, time.January, 16),
		date(2024, time.January, 23),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %v", len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("date %d: got=%s want=%s", i, got[i], want[i])
		}
	}
}

func TestMissingDates_Idempotent(t *testing.T) {
	existing := []calendar.Date{date(2024, time.January, 2)}
	today := date(2024, time.January, 23)

	first := MissingDates(existing, today, time.Tuesday)
	existing = append(existing, first...)

	second := MissingDates(existing, today, time.Tuesday)
	if len(second) != 0 {
		t.Fatalf("second run must generate nothing, got %v", second)
	}
}

func TestMissingDates_EmptyInputGeneratesNothing(t *testing.T) {
	got := MissingDates(nil, date(2024, time.June, 4), time.Tuesday)
	if len(got) != 0 {
		t.Fatalf("no anchor means no back-fill, got %v", got)
	}
}

func TestMissingDates_GapInMiddle(t *testing.T) {
	existing := []calendar.Date{
		date(2024, time.January, 2),
		date(2024, time.January, 16),
	}
	today := date(2024, time.January, 16)

	got := MissingDates(existing, today, time.Tuesday)
	if len(got) != 1 || !got[0].Equal(date(2024, time.January, 9)) {
		t.Fatalf("expected only 2024-01-09, got %v", got)
	}
}

func TestMissingDates_AnchorNotOnWeekday(t *testing.T) {
	// Earliest session on a Wednesday: generation starts at the next
	// Tuesday after it, never before the anchor.
	existing := []calendar.Date{date(2024, time.January, 3)}
	today := date(2024, time.January, 16)

	got := MissingDates(existing, today, time.Tuesday)
	want := []calendar.Date{
		date(2024, time.January, 9),
		date(2024, time.January, 16),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %v", len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("date %d: got=%s want=%s", i, got[i], want[i])
		}
	}
}
