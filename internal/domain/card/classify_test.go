package card

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		priorYellows int
		picked       Kind
		want         Classification
	}{
		{"first yellow stays yellow", 0, KindYellow, ClassYellow},
		{"second yellow escalates", 1, KindYellow, ClassSecondYellow},
		{"third yellow still escalates", 2, KindYellow, ClassSecondYellow},
		{"straight red stays red", 0, KindRed, ClassRed},
		{"red after yellow stays red", 1, KindRed, ClassRed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.priorYellows, tc.picked); got != tc.want {
				t.Fatalf("Classify(%d, %s) = %s, want %s", tc.priorYellows, tc.picked, got, tc.want)
			}
		})
	}
}

func TestBuildRecords_SecondYellowEscalates(t *testing.T) {
	min := func(v int) *int { return &v }
	assignments := []Assignment{
		{PlayerID: 7, Kind: KindYellow, Minute: min(30)},
		{PlayerID: 9, Kind: KindYellow, Minute: min(41)},
		{PlayerID: 7, Kind: KindYellow, Minute: min(78)},
	}

	records := BuildRecords(42, assignments)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].IsRed || records[0].IsSecondYellow {
		t.Fatalf("first booking for player 7 must stay yellow: %+v", records[0])
	}
	if records[1].IsRed || records[1].IsSecondYellow {
		t.Fatalf("booking for player 9 must stay yellow: %+v", records[1])
	}
	if records[2].IsRed || !records[2].IsSecondYellow {
		t.Fatalf("second booking for player 7 must escalate: %+v", records[2])
	}
	for _, r := range records {
		if r.MatchID != 42 {
			t.Fatalf("record carries wrong match id: %+v", r)
		}
	}
}

func TestBuildRecords_RedIndependentOfYellows(t *testing.T) {
	assignments := []Assignment{
		{PlayerID: 4, Kind: KindYellow},
		{PlayerID: 4, Kind: KindRed},
	}
	records := BuildRecords(7, assignments)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !records[1].IsRed || records[1].IsSecondYellow {
		t.Fatalf("explicit red must be stored as red: %+v", records[1])
	}
}

func TestBuildRecords_SkipsEmptyPlaceholder(t *testing.T) {
	assignments := []Assignment{
		{PlayerID: 3, Kind: KindRed},
		{PlayerID: 0, Kind: KindYellow},
	}
	records := BuildRecords(7, assignments)
	if len(records) != 1 {
		t.Fatalf("placeholder row must be skipped, got %d records", len(records))
	}
	if records[0].PlayerID != 3 || !records[0].IsRed {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestRecordClassification(t *testing.T) {
	if got := (Record{IsRed: true}).Classification(); got != ClassRed {
		t.Fatalf("got %s", got)
	}
	if got := (Record{IsSecondYellow: true}).Classification(); got != ClassSecondYellow {
		t.Fatalf("got %s", got)
	}
	if got := (Record{}).Classification(); got != ClassYellow {
		t.Fatalf("got %s", got)
	}
}
