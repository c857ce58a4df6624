package calendar

import (
	"testing"
	"time"
)

func TestFromTime_DropsTimeOfDay(t *testing.T) {
	vienna, err := time.LoadLocation("Europe/Vienna")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	late := time.Date(2024, time.March, 31, 23, 45, 0, 0, vienna)
	got := FromTime(late)
	want := Date{Year: 2024, Month: time.March, Day: 31}
	if got != want {
		t.Fatalf("unexpected date: got=%s want=%s", got, want)
	}
}

func TestAddDays_AcrossMonthAndYear(t *testing.T) {
	cases := []struct {
		start Date
		days  int
		want  Date
	}{
		{New(2024, time.January, 30), 7, New(2024, time.February, 6)},
		{New(2023, time.December, 26), 7, New(2024, time.January, 2)},
		{New(2024, time.February, 27), 7, New(2024, time.March, 5)}, // leap year
		{New(2024, time.March, 26), 7, New(2024, time.April, 2)},    // DST switch weekend
	}

	for _, tc := range cases {
		if got := tc.start.AddDays(tc.days); got != tc.want {
			t.Fatalf("%s + %dd: got=%s want=%s", tc.start, tc.days, got, tc.want)
		}
	}
}

func TestNextWeekday(t *testing.T) {
	// 2024-01-02 is a Tuesday.
	tuesday := New(2024, time.January, 2)
	if got := tuesday.NextWeekday(time.Tuesday); got != tuesday {
		t.Fatalf("same weekday must return the date itself, got %s", got)
	}

	wednesday := New(2024, time.January, 3)
	if got := wednesday.NextWeekday(time.Tuesday); got != New(2024, time.January, 9) {
		t.Fatalf("unexpected next tuesday: %s", got)
	}
}

func TestBeforeAfterCompare(t *testing.T) {
	a := New(2024, time.May, 1)
	b := New(2024, time.May, 2)

	if !a.Before(b) || b.Before(a) {
		t.Fatal("ordering broken")
	}
	if !b.After(a) {
		t.Fatal("After broken")
	}
	if Compare(a, b) != -1 || Compare(b, a) != 1 || Compare(a, a) != 0 {
		t.Fatal("Compare broken")
	}
}

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2024-01-16")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.String() != "2024-01-16" {
		t.Fatalf("round trip mismatch: %s", d)
	}
	if d.Weekday() != time.Tuesday {
		t.Fatalf("2024-01-16 should be a Tuesday, got %s", d.Weekday())
	}

	if _, err := Parse("16.01.2024"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
