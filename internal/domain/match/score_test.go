package match

import "testing"

func TestParseResult(t *testing.T) {
	cases := []struct {
		input   string
		want    Score
		wantErr bool
	}{
		{"3:1", Score{Club: 3, Opponent: 1}, false},
		{"0:0", Score{}, false},
		{" 2 : 4 ", Score{Club: 2, Opponent: 4}, false},
		{"", Score{}, true},
		{"3", Score{}, true},
		{"3:1:0", Score{}, true},
		{"a:1", Score{}, true},
		{"-1:2", Score{}, true},
		{"3:", Score{}, true},
	}

	for _, tc := range cases {
		got, err := ParseResult(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseResult(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseResult(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseResult(%q): got=%+v want=%+v", tc.input, got, tc.want)
		}
	}
}

func TestStoredResult_RoundTrip(t *testing.T) {
	for _, isHome := range []bool{true, false} {
		for club := 0; club <= 4; club++ {
			for opp := 0; opp <= 4; opp++ {
				stored := Score{Club: club, Opponent: opp}.Stored()
				score, err := ParseResult(stored)
				if err != nil {
					t.Fatalf("parse %q: %v", stored, err)
				}
				home, away := score.Display(isHome)
				back, err := StoredResult(home, away, isHome)
				if err != nil {
					t.Fatalf("store %d:%d home=%t: %v", home, away, isHome, err)
				}
				if back != stored {
					t.Fatalf("round trip broken: stored=%q back=%q home=%t", stored, back, isHome)
				}
			}
		}
	}
}

func TestDisplayResult_AwayFlip(t *testing.T) {
	result := "3:1"
	home, away := DisplayResult(&result, false)
	if home != "1" || away != "3" {
		t.Fatalf("away fixture must flip perspective: got %s:%s", home, away)
	}

	home, away = DisplayResult(&result, true)
	if home != "3" || away != "1" {
		t.Fatalf("home fixture must keep perspective: got %s:%s", home, away)
	}
}

func TestDisplayResult_BlankOnMissingOrMalformed(t *testing.T) {
	if home, away := DisplayResult(nil, true); home != "" || away != "" {
		t.Fatalf("nil result must render blank, got %q:%q", home, away)
	}

	bad := "3-1"
	if home, away := DisplayResult(&bad, true); home != "" || away != "" {
		t.Fatalf("malformed result must render blank, got %q:%q", home, away)
	}
}

func TestStoredResult_RejectsNegative(t *testing.T) {
	if _, err := StoredResult(-1, 0, true); err == nil {
		t.Fatal("expected error for negative home goals")
	}
}
