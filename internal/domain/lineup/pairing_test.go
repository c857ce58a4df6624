package lineup

import "testing"

func minute(v int) *int { return &v }

func TestPairSubstitutions_PositionalPairing(t *testing.T) {
	// Players A,B,C go out at 10,10,25; D,E,F come in at 10,10,25 in that
	// row order. Pairing must follow encounter order, not identity.
	entries := []Entry{
		{PlayerID: 1, IsStarter: true, SubOut: minute(10)}, // A
		{PlayerID: 2, IsStarter: true, SubOut: minute(10)}, // B
		{PlayerID: 3, IsStarter: true, SubOut: minute(25)}, // C
		{PlayerID: 4, SubIn: minute(10)},                   // D
		{PlayerID: 5, SubIn: minute(10)},                   // E
		{PlayerID: 6, SubIn: minute(25)},                   // F
	}

	events := PairSubstitutions(entries)
	want := []Substitution{
		{PlayerOut: 1, PlayerIn: 4, Minute: 10},
		{PlayerOut: 2, PlayerIn: 5, Minute: 10},
		{PlayerOut: 3, PlayerIn: 6, Minute: 25},
	}

	if len(events) != len(want) {
		t.Fatalf("unexpected event count: got=%d want=%d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d: got=%+v want=%+v", i, events[i], want[i])
		}
	}
}

func TestPairSubstitutions_SortedByMinute(t *testing.T) {
	entries := []Entry{
		{PlayerID: 1, SubOut: minute(80)},
		{PlayerID: 2, SubIn: minute(80)},
		{PlayerID: 3, SubOut: minute(46)},
		{PlayerID: 4, SubIn: minute(46)},
	}

	events := PairSubstitutions(entries)
	if len(events) != 2 {
		t.Fatalf("unexpected event count: %d", len(events))
	}
	if events[0].Minute != 46 || events[1].Minute != 80 {
		t.Fatalf("events not sorted by minute: %+v", events)
	}
}

func TestPairSubstitutions_UnbalancedMinuteDropsRemainder(t *testing.T) {
	// Two out at 60, one in: one pair, the second out-player is silently
	// dropped from the derived view.
	entries := []Entry{
		{PlayerID: 1, SubOut: minute(60)},
		{PlayerID: 2, SubOut: minute(60)},
		{PlayerID: 3, SubIn: minute(60)},
	}

	events := PairSubstitutions(entries)
	if len(events) != 1 {
		t.Fatalf("expected one pair, got %d", len(events))
	}
	if events[0].PlayerOut != 1 || events[0].PlayerIn != 3 {
		t.Fatalf("unexpected pair: %+v", events[0])
	}

	unmatched := UnmatchedAt(entries)
	if unmatched[60] != 1 {
		t.Fatalf("expected one unmatched entry at minute 60, got %v", unmatched)
	}
}

func TestPairSubstitutions_PlayerSwappedBothWays(t *testing.T) {
	// A player substituted out can carry only SubOut while someone else
	// carries both in and out across different minutes.
	entries := []Entry{
		{PlayerID: 1, IsStarter: true, SubOut: minute(46)},
		{PlayerID: 2, SubIn: minute(46), SubOut: minute(85)},
		{PlayerID: 3, SubIn: minute(85)},
	}

	events := PairSubstitutions(entries)
	want := []Substitution{
		{PlayerOut: 1, PlayerIn: 2, Minute: 46},
		{PlayerOut: 2, PlayerIn: 3, Minute: 85},
	}
	if len(events) != 2 || events[0] != want[0] || events[1] != want[1] {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestParseMinute(t *testing.T) {
	if got := ParseMinute("73"); got == nil || *got != 73 {
		t.Fatalf("expected 73, got %v", got)
	}
	if got := ParseMinute(" 46 "); got == nil || *got != 46 {
		t.Fatalf("expected 46, got %v", got)
	}
	for _, bad := range []string{"", "abc", "-5", "4 5"} {
		if got := ParseMinute(bad); got != nil {
			t.Fatalf("ParseMinute(%q) must be nil, got %d", bad, *got)
		}
	}
}
