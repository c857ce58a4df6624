package match

import (
	"testing"
	"time"

	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
)

func TestGroupByDay_FirstTeamBeforeReserve(t *testing.T) {
	day := calendar.New(2024, time.September, 14)

	// Reserve fixture deliberately listed first.
	matches := []Match{
		{ID: 2, Date: day, Squad: SquadReserve},
		{ID: 1, Date: day, Squad: SquadFirstTeam},
	}

	groups := GroupByDay(matches)
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %d", len(groups))
	}
	if groups[0].Matches[0].Squad != SquadFirstTeam {
		t.Fatalf("KM fixture must come first, got %s", groups[0].Matches[0].Squad)
	}
	if groups[0].Matches[1].Squad != SquadReserve {
		t.Fatalf("RES fixture must come second, got %s", groups[0].Matches[1].Squad)
	}
}

func TestGroupByDay_GroupsOrderedByDate(t *testing.T) {
	early := calendar.New(2024, time.August, 3)
	late := calendar.New(2024, time.August, 10)

	groups := GroupByDay([]Match{
		{ID: 1, Date: late, Squad: SquadFirstTeam},
		{ID: 2, Date: early, Squad: SquadFirstTeam},
	})

	if len(groups) != 2 {
		t.Fatalf("expected two groups, got %d", len(groups))
	}
	if !groups[0].Date.Equal(early) || !groups[1].Date.Equal(late) {
		t.Fatalf("groups out of order: %s, %s", groups[0].Date, groups[1].Date)
	}
}

func TestClassifyStatus(t *testing.T) {
	today := calendar.New(2024, time.September, 14)
	result := "2:2"

	cases := []struct {
		name string
		m    Match
		want Status
	}{
		{"played", Match{Result: &result, Date: today.AddDays(-7)}, StatusPlayed},
		{"upcoming today", Match{Date: today}, StatusUpcoming},
		{"upcoming future", Match{Date: today.AddDays(7)}, StatusUpcoming},
		{"missing result", Match{Date: today.AddDays(-1)}, StatusMissingResult},
	}

	for _, tc := range cases {
		if got := ClassifyStatus(tc.m, today); got != tc.want {
			t.Fatalf("%s: got=%s want=%s", tc.name, got, tc.want)
		}
	}
}
