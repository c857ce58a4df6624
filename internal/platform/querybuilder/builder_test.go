package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("*").From("matches").
		Where(Eq("season_id", int64(3)), IsNull("result")).
		OrderBy("match_date", "id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT * FROM matches WHERE season_id = $1 AND result IS NULL ORDER BY match_date, id"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	query, args, err := Select("id").From("players").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertBuilder_MultiRow(t *testing.T) {
	query, args, err := InsertInto("cards").
		Columns("match_id", "player_id", "is_red").
		Values(int64(1), int64(10), false).
		Values(int64(1), int64(11), true).
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO cards (match_id, player_id, is_red) VALUES ($1, $2, $3), ($4, $5, $6)"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 6 {
		t.Fatalf("unexpected arg count: %d", len(args))
	}
}

func TestInsertBuilder_RowLengthMismatch(t *testing.T) {
	_, _, err := InsertInto("cards").
		Columns("match_id", "player_id").
		Values(int64(1)).
		ToSQL()
	if err == nil {
		t.Fatal("expected row length error")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		MatchID  int64  `db:"match_id"`
		PlayerID int64  `db:"player_id"`
		Ignored  string `db:"-"`
		hidden   int
	}
	_ = row{hidden: 0}.hidden

	query, args, err := InsertModel("lineup", row{MatchID: 7, PlayerID: 4}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}
	want := "INSERT INTO lineup (match_id, player_id) VALUES ($1, $2) RETURNING id"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("practices").
		Set("canceled", true).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(9))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE practices SET canceled = $1, updated_at = NOW() WHERE id = $2"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("goals").
		Where(Eq("match_id", int64(5))).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete: %v", err)
	}
	if query != "DELETE FROM goals WHERE match_id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDeleteBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("goals").ToSQL(); err == nil {
		t.Fatal("expected error for delete without where")
	}
}
